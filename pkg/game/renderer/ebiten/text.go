package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"containmentbreach/pkg/game/renderer"
)

// styleColor maps a markup style to the palette.
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleRoom:
		return colorRoom
	case renderer.StyleAction, renderer.StyleTitle:
		return colorAction
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleWarning:
		return colorWarning
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleOnline:
		return colorOnline
	case renderer.StyleSubject:
		return colorSubject
	default:
		return colorText
	}
}

// parseMarkup converts a marked-up message into coloured segments.
func parseMarkup(msg string) []textSegment {
	parsed := renderer.ParseMarkup(msg)
	segments := make([]textSegment, 0, len(parsed))
	for _, seg := range parsed {
		segments = append(segments, textSegment{text: seg.Text, color: styleColor(seg.Style)})
	}
	return segments
}

// drawColoredChar draws a glyph centred in the tile at (x, y) (uses mono font)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y float64, col color.Color) {
	face := e.getMonoFontFace()
	w, h := text.Measure(char, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+(float64(e.tileSize)-w)/2, y+(float64(e.tileSize)-h)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, char, face, op)
}

// drawColoredText draws text with a specific color using sans-serif font for UI
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face.
// y is the top of the line; the face size gives the baseline offset.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawMarkup draws a marked-up line at UI size.
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y int) {
	e.drawColoredTextSegments(screen, parseMarkup(msg), x, y, 1)
}

// drawColoredTextSegments draws multiple text segments with different colors,
// scaled by alpha.
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int, alpha float64) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(applyAlpha(seg.color, alpha))
		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = min(max(alpha, 0), 1)
	r, g, b, a := c.RGBA()

	// Premultiplied: fade towards transparent black, not transparent bright colors.
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}

// getMarkupWidth measures a marked-up string as it will be drawn.
func (e *EbitenRenderer) getMarkupWidth(s string) float64 {
	return e.getTextWidth(renderer.PlainText(s))
}

// lineHeight is the vertical step between UI text lines.
func (e *EbitenRenderer) lineHeight() int {
	return int(e.getUIFontSize() * 1.5)
}

// wrapText breaks str into lines no wider than maxWidth pixels.
func (e *EbitenRenderer) wrapText(str string, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(str, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && e.getTextWidth(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
