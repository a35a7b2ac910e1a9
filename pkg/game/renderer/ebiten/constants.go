package ebiten

import "image/color"

// Color palette - dim control-room greens with warm alarm colours
var (
	colorBackground      = color.RGBA{16, 20, 24, 255}    // Near-black blue-gray
	colorMapBackground   = color.RGBA{10, 14, 16, 255}    // Darker for map area
	colorTileBg          = color.RGBA{34, 42, 48, 255}    // Room tile
	colorTileSelectedBg  = color.RGBA{40, 70, 60, 255}    // Tile under the active camera
	colorTileControlBg   = color.RGBA{60, 60, 90, 255}    // Control room tile
	colorRoom            = color.RGBA{150, 170, 200, 255} // Room names and plain rooms
	colorOnline          = color.RGBA{90, 220, 130, 255}  // Live feeds
	colorSubject         = color.RGBA{255, 90, 80, 255}   // Movement pings
	colorWarning         = color.RGBA{255, 210, 90, 255}  // Cooldowns, lures, reboot
	colorDenied          = color.RGBA{255, 100, 100, 255} // Offline cameras, rejections
	colorSubtle          = color.RGBA{110, 120, 140, 255} // Labels
	colorText            = color.RGBA{205, 215, 225, 255} // Body text
	colorAction          = color.RGBA{120, 210, 200, 255} // Key hints and titles
	colorPanelBackground = color.RGBA{22, 28, 34, 230}    // Semi-transparent dark
	colorFocusBackground = color.RGBA{50, 70, 80, 220}    // Selected menu row
	colorBreachBg        = color.RGBA{120, 20, 20, 255}   // Breach banner at full pulse
)

// Tile size constraints
const (
	defaultTileSize = 32
	minTileSize     = 16
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Font size at a 24px tile
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)

const (
	windowWidth  = 1100
	windowHeight = 720
	margin       = 16
	panelWidth   = 360
)
