package renderer

import (
	"context"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleAction
	StyleDenied
	StyleWarning
	StyleSubtle
	StyleOnline
	StyleSubject
	StyleTitle
)

// Renderer defines the interface for game rendering backends.
// Implementations include the terminal (TUI) and Ebiten front-ends.
type Renderer interface {
	// Init prepares colours, fonts and the window or terminal.
	Init() error

	// Run draws frames from the driver's session and feeds it player intents
	// until the player quits or ctx is done.
	Run(ctx context.Context, d *Driver) error
}
