// Package tui is the terminal front-end: a real-time loop over raw key
// presses that redraws the whole screen a few times a second.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/engine/input"
	"containmentbreach/pkg/engine/terminal"
	"containmentbreach/pkg/game/menu"
	"containmentbreach/pkg/game/renderer"
	"containmentbreach/pkg/game/state"
)

const (
	frameInterval  = 100 * time.Millisecond
	debounceWindow = 60 * time.Millisecond
	tileWidth      = 3
	panelGap       = 4
)

// ANSI home + clear. exec'ing clear every frame flickers in raw mode.
const clearScreen = "\x1b[H\x1b[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorWarning     color.Style
	colorSubtle      color.Style
	colorOnline      color.Style
	colorSubject     color.Style
	colorTitle       color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorRoom = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorWarning = color.Style{color.FgYellow, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorOnline = color.Style{color.FgGreen}
	t.colorSubject = color.Style{color.FgRed}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	return nil
}

// Run reads keys in raw mode and redraws until the player quits.
func (t *TUIRenderer) Run(ctx context.Context, d *renderer.Driver) error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("tui renderer needs an interactive terminal")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys, restore, err := input.Keys(ctx)
	defer restore()
	if err != nil {
		return err
	}
	return t.loop(ctx, d, keys)
}

func (t *TUIRenderer) loop(ctx context.Context, d *renderer.Driver, keys <-chan input.RawInput) error {
	debouncer := input.NewDebouncer(debounceWindow)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	t.draw(d)
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-keys:
			if !ok {
				return nil
			}
			ev, accepted := debouncer.Accept(raw)
			if !accepted {
				continue
			}
			if d.Handle(input.MapToIntent(ev)) {
				fmt.Fprint(t.out, clearScreen)
				return nil
			}
			t.draw(d)
		case <-ticker.C:
			t.draw(d)
		}
	}
}

func (t *TUIRenderer) draw(d *renderer.Driver) {
	var screen string
	if w, h := terminal.GetSize(); terminal.TooSmall(w, h) {
		screen = fmt.Sprintf(gotext.Get("TUI_TOO_SMALL"), terminal.MinWidth, terminal.MinHeight) + "\n"
	} else if v, ok := d.MenuView(); ok {
		screen = t.RenderMenu(v)
	} else {
		screen = t.RenderFrame(d.Frame())
	}
	// Raw mode does not translate newlines.
	fmt.Fprint(t.out, clearScreen+strings.ReplaceAll(screen, "\n", "\r\n"))
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleOnline:
		return t.colorOnline.Sprint(text)
	case renderer.StyleSubject:
		return t.colorSubject.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	var b strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		b.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return b.String()
}

// key renders a key hint: the first letter bold, the rest plain action colour.
func (t *TUIRenderer) key(k, label string, enabled bool) string {
	if !enabled {
		return t.colorSubtle.Sprint(k + " " + label)
	}
	return t.colorActionShort.Sprint(k) + " " + t.colorAction.Sprint(label)
}

// RenderFrame renders a complete night frame.
func (t *TUIRenderer) RenderFrame(f renderer.Frame) string {
	var b strings.Builder

	status := f.StatusLine()
	if f.PowerOut {
		status += "  " + t.colorDenied.Sprint(gotext.Get("HUD_POWER_OUT"))
	}
	if f.Phase == state.PhasePaused {
		status += "  " + t.colorWarning.Sprint(gotext.Get("HUD_PAUSED"))
	}
	b.WriteString(t.colorTitle.Sprint(status) + "\n")

	if banner := f.BreachText(); banner != "" {
		b.WriteString(t.colorDenied.Sprint(banner) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	mapLines := t.mapLines(f)
	panel := t.panelLines(f)
	for i := 0; i < max(len(mapLines), len(panel)); i++ {
		line := strings.Repeat(" ", f.Width*tileWidth)
		if i < len(mapLines) {
			line = mapLines[i]
		}
		b.WriteString(line)
		if i < len(panel) {
			b.WriteString(strings.Repeat(" ", panelGap) + panel[i])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(f.DoorLine())
	for _, c := range f.Cooldowns() {
		b.WriteString("   " + c)
	}
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		t.key("w/a/d", gotext.Get("KEY_DOORS"), f.CanUseDoors),
		t.key("s", gotext.Get("KEY_RELEASE"), f.Door.IsValid()),
		t.key("←/→", gotext.Get("KEY_CAMERAS"), true),
		t.key("m", gotext.Get("KEY_MAP"), f.Feed != nil),
		t.key("p", gotext.Get("KEY_PAUSE"), true),
	}, "  ") + "\n\n")

	for _, h := range f.Hints {
		b.WriteString(t.colorWarning.Sprint("» ") + t.FormatText(h) + "\n")
	}

	b.WriteString(t.messagesPane(f.Messages))
	return b.String()
}

func (t *TUIRenderer) mapLines(f renderer.Frame) []string {
	var lines []string
	for _, row := range f.Grid() {
		var b strings.Builder
		for _, tile := range row {
			if tile == nil {
				b.WriteString(strings.Repeat(" ", tileWidth))
				continue
			}
			b.WriteString(" " + t.StyleText(tile.Icon(), tile.Style()) + " ")
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (t *TUIRenderer) panelLines(f renderer.Frame) []string {
	if f.Feed == nil {
		return []string{
			t.colorTitle.Sprint(gotext.Get("FEED_MAP_TITLE")),
			t.colorSubtle.Sprint(gotext.Get("FEED_MAP_HELP")),
		}
	}

	feed := f.Feed
	lines := []string{t.colorTitle.Sprint(fmt.Sprintf(gotext.Get("FEED_CAM"), feed.RoomName))}
	switch {
	case feed.Online:
		lines = append(lines, t.colorOnline.Sprint(gotext.Get("FEED_ONLINE")))
	case feed.Rebooting:
		lines = append(lines, t.colorWarning.Sprint(fmt.Sprintf(gotext.Get("FEED_REBOOTING"), feed.Progress)))
	default:
		lines = append(lines, t.colorDenied.Sprint(fmt.Sprintf(gotext.Get("FEED_OFFLINE"), feed.Progress)))
	}

	if !feed.Online {
		lines = append(lines, t.colorSubtle.Sprint(gotext.Get("FEED_STATIC")))
	} else if len(feed.Pings) == 0 {
		lines = append(lines, t.colorSubtle.Sprint(gotext.Get("FEED_NO_MOVEMENT")))
	} else {
		lines = append(lines, t.colorSubject.Sprint(fmt.Sprintf(gotext.Get("FEED_MOVEMENT"), strings.Join(feed.Pings, ", "))))
	}

	lines = append(lines, "",
		t.key("f", gotext.Get("KEY_LURE"), feed.CanLure),
		t.key("x", gotext.Get("KEY_SHOCK"), feed.CanShock),
		t.key("r", gotext.Get("KEY_REBOOT"), !feed.Online && !feed.Rebooting),
	)
	return lines
}

func (t *TUIRenderer) messagesPane(msgs []string) string {
	var b strings.Builder
	b.WriteString("\n" + t.colorSubtle.Sprint(strings.Repeat("─", 40)) + "\n")
	for _, m := range msgs {
		b.WriteString(t.FormatText(m) + "\n")
	}
	return b.String()
}

// RenderMenu renders a menu page.
func (t *TUIRenderer) RenderMenu(v menu.View) string {
	var b strings.Builder
	b.WriteString(t.colorTitle.Sprint(v.Title) + "\n\n")

	if v.Body != "" {
		b.WriteString(wrap(v.Body, terminal.MinWidth) + "\n\n")
	}

	for i, item := range v.Items {
		prefix := "  "
		label := item.GetLabel()
		switch {
		case !item.IsSelectable():
			label = t.colorSubtle.Sprint(label)
		case i == v.Selected:
			prefix = t.colorActionShort.Sprint("> ")
			label = t.colorAction.Sprint(label)
		}
		b.WriteString(prefix + label + "\n")
	}

	if v.HelpText != "" {
		b.WriteString("\n" + t.FormatText(v.HelpText) + "\n")
	}
	b.WriteString("\n" + t.colorSubtle.Sprint(gotext.Get("MENU_INSTRUCTIONS")) + "\n")
	return b.String()
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" && len([]rune(line))+1+len([]rune(word)) > width {
				out = append(out, line)
				line = word
				continue
			}
			if line != "" {
				line += " "
			}
			line += word
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
