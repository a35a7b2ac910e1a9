package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "containmentbreach/pkg/engine/input"
)

// keyboard maps polled keys to the raw codes the terminal front-end also
// produces, so both share one bindings table. Navigation keys repeat while
// held; everything else fires once per press.
var keyboard = map[ebiten.Key]keyBinding{
	ebiten.KeyArrowUp:        {code: "arrow_up", repeat: true},
	ebiten.KeyArrowDown:      {code: "arrow_down", repeat: true},
	ebiten.KeyArrowLeft:      {code: "arrow_left", repeat: true},
	ebiten.KeyArrowRight:     {code: "arrow_right", repeat: true},
	ebiten.KeyK:              {code: "k", repeat: true},
	ebiten.KeyJ:              {code: "j", repeat: true},
	ebiten.KeyH:              {code: "h", repeat: true},
	ebiten.KeyL:              {code: "l", repeat: true},
	ebiten.KeyTab:            {code: "tab", repeat: true},
	ebiten.KeyM:              {code: "m"},
	ebiten.KeyF:              {code: "f"},
	ebiten.KeyX:              {code: "x"},
	ebiten.KeyR:              {code: "r"},
	ebiten.KeyW:              {code: "w"},
	ebiten.KeyA:              {code: "a"},
	ebiten.KeyD:              {code: "d"},
	ebiten.KeyS:              {code: "s"},
	ebiten.KeySpace:          {code: "space"},
	ebiten.KeyP:              {code: "p"},
	ebiten.KeyEscape:         {code: "escape"},
	ebiten.KeyEnter:          {code: "enter"},
	ebiten.KeyNumpadEnter:    {code: "enter"},
	ebiten.KeyQ:              {code: "q"},
	ebiten.KeyF9:             {code: "f9"},
	ebiten.KeyEqual:          {code: "="},
	ebiten.KeyMinus:          {code: "-"},
	ebiten.KeyNumpadAdd:      {code: "numpad_add"},
	ebiten.KeyNumpadSubtract: {code: "numpad_subtract"},
}

// Update handles input (Ebiten interface). The simulation runs on its own
// scheduler goroutine; this only forwards intents.
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithField("size", fmt.Sprintf("%dx%d", w, h)).Info("Window opened")
	}
	if e.quit || e.ctx.Err() != nil {
		return ebiten.Termination
	}

	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}
	e.dispatch(intent)
	return nil
}

// dispatch applies zoom locally and hands everything else to the driver.
func (e *EbitenRenderer) dispatch(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
	case engineinput.ActionZoomIn:
		e.setTileSize(e.tileSize + tileSizeStep)
	case engineinput.ActionZoomOut:
		e.setTileSize(e.tileSize - tileSizeStep)
	default:
		if e.driver.Handle(intent) {
			e.quit = true
		}
	}
}

// setTileSize clamps and applies a new tile size.
func (e *EbitenRenderer) setTileSize(size int) {
	size = min(max(size, minTileSize), maxTileSize)
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

func mapCode(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: device,
		Code:   code,
	}))
}

// checkGamepadInput checks for controller/gamepad input and returns the corresponding Intent.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		// Left stick and d-pad both steer menus and camera cycling.
		const deadZone = 0.5
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)

		directions := []struct {
			pressed bool
			code    string
		}{
			{stickX < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton14), "gamepad_dpad_left"},
			{stickX > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton12), "gamepad_dpad_right"},
			{stickY < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton11), "gamepad_dpad_up"},
			{stickY > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton13), "gamepad_dpad_down"},
		}
		for _, d := range directions {
			if e.shouldRepeatKey(d.pressed, fmt.Sprintf("gamepad_%d_%s", id, d.code)) {
				return mapCode(engineinput.DeviceGamepad, d.code)
			}
		}

		// Face buttons: A 0, B 1, X 2, Y 3, Start 7.
		buttons := []struct {
			button ebiten.GamepadButton
			code   string
		}{
			{ebiten.GamepadButton0, "gamepad_a"},
			{ebiten.GamepadButton1, "gamepad_b"},
			{ebiten.GamepadButton2, "gamepad_x"},
			{ebiten.GamepadButton3, "gamepad_y"},
			{ebiten.GamepadButton7, "gamepad_start"},
		}
		for _, b := range buttons {
			if inpututil.IsGamepadButtonJustPressed(id, b.button) {
				return mapCode(engineinput.DeviceGamepad, b.code)
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Ctrl+C quits like it does in the terminal.
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return mapCode(engineinput.DeviceKeyboard, "ctrl_c")
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) && inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		return mapCode(engineinput.DeviceKeyboard, "+")
	}

	for key, b := range keyboard {
		var fire bool
		if b.repeat {
			fire = e.shouldRepeatKey(ebiten.IsKeyPressed(key), "key_"+b.code)
		} else {
			fire = inpututil.IsKeyJustPressed(key)
		}
		if fire {
			if intent := mapCode(engineinput.DeviceKeyboard, b.code); intent.Action != engineinput.ActionNone {
				return intent
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
