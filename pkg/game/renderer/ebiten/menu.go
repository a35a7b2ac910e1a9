package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	gamemenu "containmentbreach/pkg/game/menu"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Used by menus and the camera panel. alpha scales shadow opacity (1.0 = full).
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color, alpha float32) {
	const shadowSpread = 8
	// Derive shadow from border color (darkened)
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := uint8((bor >> 8) * 15 / 255)
	shadowG := uint8((bog >> 8) * 15 / 255)
	shadowB := uint8((bob >> 8) * 15 / 255)
	if shadowR < 8 {
		shadowR = 8
	}
	if shadowG < 8 {
		shadowG = 8
	}
	if shadowB < 8 {
		shadowB = 8
	}

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := uint8(12 + i*8)
		if ringAlpha > 55 {
			ringAlpha = 55
		}
		ringAlpha = uint8(float32(ringAlpha) * alpha)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenu draws a menu page as a centred panel: title, optional body text,
// the item list with the cursor row highlighted, then the help line.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, v gamemenu.View) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lh := e.lineHeight()
	titleFace := e.getSansBoldTitleFontFace()

	width := e.getTextWidth(v.Title) + 2*margin
	for _, item := range v.Items {
		width = max(width, e.getMarkupWidth(item.GetLabel()))
	}
	width = max(width, e.getMarkupWidth(v.HelpText))
	width = min(max(width+4*margin, 420), float64(screenWidth-4*margin))

	var body []string
	if v.Body != "" {
		body = e.wrapText(v.Body, width-4*margin)
	}

	height := float64(lh*2 + margin)
	height += float64(len(body) * lh)
	if len(body) > 0 {
		height += float64(margin)
	}
	height += float64(len(v.Items) * lh)
	if v.HelpText != "" {
		height += float64(lh + margin)
	}
	height += float64(lh + 2*margin)
	height = math.Min(height, float64(screenHeight-2*margin))

	x := (float64(screenWidth) - width) / 2
	y := (float64(screenHeight) - height) / 2
	drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(width), float32(height), 10, 2, colorPanelBackground, colorAction, 1)

	tx := int(x) + 2*margin
	ty := int(y) + margin
	e.drawColoredTextWithFace(screen, v.Title, tx, ty, colorAction, titleFace)
	ty += lh*2 - margin/2

	for _, line := range body {
		e.drawColoredText(screen, line, tx, ty, colorText)
		ty += lh
	}
	if len(body) > 0 {
		ty += margin
	}

	for i, item := range v.Items {
		col := color.Color(colorText)
		switch {
		case !item.IsSelectable():
			col = colorSubtle
		case i == v.Selected:
			var path vector.Path
			appendRoundedRect(&path, float32(tx-margin/2), float32(ty-lh/6), float32(width-3*margin), float32(lh), 6)
			opts := &vector.DrawPathOptions{AntiAlias: true}
			opts.ColorScale.ScaleWithColor(colorFocusBackground)
			vector.FillPath(screen, &path, nil, opts)
			col = colorAction
		}
		e.drawColoredText(screen, item.GetLabel(), tx, ty, col)
		ty += lh
	}

	if v.HelpText != "" {
		ty += margin
		e.drawMarkup(screen, v.HelpText, tx, ty)
		ty += lh
	}
	ty += margin
	e.drawColoredText(screen, gotext.Get("MENU_INSTRUCTIONS"), tx, ty, colorSubtle)
}
