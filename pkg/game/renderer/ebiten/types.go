// Package ebiten provides an Ebiten-based 2D graphical renderer for the control room.
package ebiten

import (
	"context"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// keyBinding maps a physical key to the raw input code the bindings table knows.
type keyBinding struct {
	code   string
	repeat bool
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for the facility map (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for titles

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize      float64
	cachedUIFontSize        float64
	cachedMonoFace          *text.GoTextFace
	cachedSansFace          *text.GoTextFace
	cachedSansBoldFace      *text.GoTextFace
	cachedSansBoldTitleFace *text.GoTextFace
	cachedSansBoldTitleSize float64

	ctx    context.Context
	driver *renderer.Driver
	quit   bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Key repeat state tracking
	// Maps key/button codes to their repeat state
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	log *logrus.Entry
}
