package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/game/renderer"
	"containmentbreach/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.driver == nil || e.monoFontSource == nil || e.sansFontSource == nil {
		return
	}

	if v, ok := e.driver.MenuView(); ok {
		e.drawMenu(screen, v)
		return
	}

	f := e.driver.Frame()
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lh := e.lineHeight()

	y := margin
	e.drawHeader(screen, f, y)
	y += lh + margin/2

	if f.Breach != nil {
		e.drawBreachBanner(screen, f, y, screenWidth)
	}
	y += lh + margin

	mapBottom := e.drawMap(screen, f, margin, y)
	e.drawFeedPanel(screen, f, screenWidth-panelWidth-margin, y)

	y = max(mapBottom, y+panelHeight(lh)) + margin
	y = e.drawControls(screen, f, margin, y)
	e.drawMessages(screen, f.Messages, margin, y+margin/2, screenHeight)

	if f.Phase == state.PhasePaused {
		vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), color.RGBA{0, 0, 0, 140}, false)
	}
}

// drawHeader draws the night/hour/power line with the power-out marker.
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, f renderer.Frame, y int) {
	face := e.getSansBoldFontFace()
	e.drawColoredTextWithFace(screen, f.StatusLine(), margin, y, colorAction, face)
	if f.PowerOut {
		x := margin + int(e.getTextWidth(f.StatusLine())) + 2*margin
		e.drawColoredTextWithFace(screen, gotext.Get("HUD_POWER_OUT"), x, y, colorDenied, face)
	}
}

// drawBreachBanner fills a pulsing strip with the countdown text.
func (e *EbitenRenderer) drawBreachBanner(screen *ebiten.Image, f renderer.Frame, y, screenWidth int) {
	h := float32(e.lineHeight())
	vector.DrawFilledRect(screen, margin, float32(y)-4, float32(screenWidth-2*margin), h+8, breachPulse(f.Breach.Remaining), false)
	e.drawColoredTextWithFace(screen, f.BreachText(), 2*margin, y, colorText, e.getSansBoldFontFace())
}

// drawMap draws the facility grid at (x, y) and returns its bottom edge.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, f renderer.Frame, x, y int) int {
	ts := float32(e.tileSize)
	w, h := float32(f.Width)*ts, float32(f.Height)*ts
	vector.DrawFilledRect(screen, float32(x)-4, float32(y)-4, w+8, h+8, colorMapBackground, false)

	for _, t := range f.Rooms {
		tx := float32(x) + float32(t.X)*ts
		ty := float32(y) + float32(t.Y)*ts

		bg := colorTileBg
		switch {
		case t.Control:
			bg = colorTileControlBg
		case t.Selected:
			bg = colorTileSelectedBg
		}
		const inset = 2
		vector.DrawFilledRect(screen, tx+inset, ty+inset, ts-2*inset, ts-2*inset, bg, false)
		if t.Lure {
			vector.StrokeRect(screen, tx+inset, ty+inset, ts-2*inset, ts-2*inset, 2, colorWarning, false)
		}
		e.drawColoredChar(screen, t.Icon(), float64(tx), float64(ty), styleColor(t.Style()))
	}
	return y + int(h)
}

// panelHeight is the fixed height of the camera panel in lines.
func panelHeight(lh int) int {
	return lh*8 + 2*margin
}

// drawFeedPanel draws the selected camera's feed, or the map legend.
func (e *EbitenRenderer) drawFeedPanel(screen *ebiten.Image, f renderer.Frame, x, y int) {
	lh := e.lineHeight()
	drawRoundedRectWithShadow(screen, float32(x), float32(y), panelWidth, float32(panelHeight(lh)), 8, 1.5, colorPanelBackground, colorSubtle, 1)

	tx, ty := x+margin, y+margin
	title := e.getSansBoldTitleFontFace()
	line := func(msg string, col color.Color) {
		e.drawColoredText(screen, msg, tx, ty, col)
		ty += lh
	}

	feed := f.Feed
	if feed == nil {
		e.drawColoredTextWithFace(screen, gotext.Get("FEED_MAP_TITLE"), tx, ty, colorAction, title)
		ty += lh + margin/2
		line(gotext.Get("FEED_MAP_HELP"), colorSubtle)
		return
	}

	e.drawColoredTextWithFace(screen, fmt.Sprintf(gotext.Get("FEED_CAM"), feed.RoomName), tx, ty, colorAction, title)
	ty += lh + margin/2

	switch {
	case feed.Online:
		line(gotext.Get("FEED_ONLINE"), colorOnline)
	case feed.Rebooting:
		line(fmt.Sprintf(gotext.Get("FEED_REBOOTING"), feed.Progress), colorWarning)
	default:
		line(fmt.Sprintf(gotext.Get("FEED_OFFLINE"), feed.Progress), colorDenied)
	}

	switch {
	case !feed.Online:
		e.drawStatic(screen, tx, ty, panelWidth-2*margin, lh*2)
		ty += lh * 2
	case len(feed.Pings) == 0:
		line(gotext.Get("FEED_NO_MOVEMENT"), colorSubtle)
	default:
		line(fmt.Sprintf(gotext.Get("FEED_MOVEMENT"), strings.Join(feed.Pings, ", ")), colorSubject)
	}

	ty += lh / 2
	e.drawKey(screen, tx, ty, "F", gotext.Get("KEY_LURE"), feed.CanLure)
	ty += lh
	e.drawKey(screen, tx, ty, "X", gotext.Get("KEY_SHOCK"), feed.CanShock)
	ty += lh
	e.drawKey(screen, tx, ty, "R", gotext.Get("KEY_REBOOT"), !feed.Online && !feed.Rebooting)
}

// drawStatic fills a box with deterministic noise for a dead feed.
func (e *EbitenRenderer) drawStatic(screen *ebiten.Image, x, y, w, h int) {
	const cell = 4
	seed := uint32(ebiten.Tick())
	for py := 0; py < h; py += cell {
		for px := 0; px < w; px += cell {
			seed = seed*1664525 + 1013904223
			v := uint8(40 + seed>>24%60)
			vector.DrawFilledRect(screen, float32(x+px), float32(y+py), cell, cell, color.RGBA{v, v, v, 255}, false)
		}
	}
}

// drawKey draws a key hint, dimmed when the action is unavailable.
func (e *EbitenRenderer) drawKey(screen *ebiten.Image, x, y int, key, label string, enabled bool) {
	keyCol, labelCol := color.Color(colorAction), color.Color(colorText)
	if !enabled {
		keyCol, labelCol = colorSubtle, colorSubtle
	}
	e.drawColoredTextWithFace(screen, key, x, y, keyCol, e.getSansBoldFontFace())
	e.drawColoredText(screen, label, x+int(e.getTextWidth(key))+8, y, labelCol)
}

// drawControls draws the door state, cooldowns, key hints and contextual
// hints; it returns the next free y.
func (e *EbitenRenderer) drawControls(screen *ebiten.Image, f renderer.Frame, x, y int) int {
	lh := e.lineHeight()

	doorCol := color.Color(colorText)
	if f.Door.IsValid() {
		doorCol = colorWarning
	}
	e.drawColoredText(screen, f.DoorLine(), x, y, doorCol)
	cx := x + int(e.getTextWidth(f.DoorLine())) + 2*margin
	for _, c := range f.Cooldowns() {
		e.drawColoredText(screen, c, cx, y, colorSubtle)
		cx += int(e.getTextWidth(c)) + 2*margin
	}
	y += lh

	keys := []struct {
		key, label string
		enabled    bool
	}{
		{"W/A/D", gotext.Get("KEY_DOORS"), f.CanUseDoors},
		{"S", gotext.Get("KEY_RELEASE"), f.Door.IsValid()},
		{"←/→", gotext.Get("KEY_CAMERAS"), true},
		{"M", gotext.Get("KEY_MAP"), f.Feed != nil},
		{"P", gotext.Get("KEY_PAUSE"), true},
	}
	kx := x
	for _, k := range keys {
		e.drawKey(screen, kx, y, k.key, k.label, k.enabled)
		kx += int(e.getTextWidth(k.key)+e.getTextWidth(k.label)) + 8 + 2*margin
	}
	y += lh

	for _, h := range f.Hints {
		e.drawMarkup(screen, "WARN{» } "+h, x, y)
		y += lh
	}
	return y
}

// drawMessages draws the message log newest-last, fading older lines and
// dropping whatever does not fit above the bottom margin.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, msgs []string, x, y, screenHeight int) {
	lh := e.lineHeight()
	room := max((screenHeight-margin-y)/lh, 0)
	if len(msgs) > room {
		msgs = msgs[len(msgs)-room:]
	}
	for i, m := range msgs {
		alpha := 0.4 + 0.6*float64(i+1)/float64(len(msgs))
		e.drawColoredTextSegments(screen, parseMarkup(m), x, y+i*lh, alpha)
	}
}
