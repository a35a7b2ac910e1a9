package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/renderer"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer. A non-positive tileSize uses the default.
func New(tileSize int) *EbitenRenderer {
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	return &EbitenRenderer{
		windowWidth:    windowWidth,
		windowHeight:   windowHeight,
		tileSize:       min(max(tileSize, minTileSize), maxTileSize),
		keyRepeatState: make(map[string]keyRepeatInfo),
		log:            logger.WithComponent("ebiten"),
	}
}

// Init loads fonts and configures the window.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return nil
}

// Run blocks in the Ebiten game loop until the player quits, the window
// closes, or ctx is done.
func (e *EbitenRenderer) Run(ctx context.Context, d *renderer.Driver) error {
	e.ctx = ctx
	e.driver = d

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
