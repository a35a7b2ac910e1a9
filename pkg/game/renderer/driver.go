package renderer

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "containmentbreach/pkg/engine/input"
	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/devtools"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/menu"
	"containmentbreach/pkg/game/state"
)

// Driver routes player intents to the menus or the running night. Both
// front-ends share it so they behave the same.
type Driver struct {
	Session *gameplay.Session
	Menu    *menu.Controller

	dumpDir string
	log     *logrus.Entry
}

// NewDriver returns a driver for s. F9 dumps are written to dumpDir.
func NewDriver(s *gameplay.Session, dumpDir string) *Driver {
	return &Driver{
		Session: s,
		Menu:    menu.NewController(s),
		dumpDir: dumpDir,
		log:     logger.WithComponent("driver"),
	}
}

// Handle applies one intent and reports whether the player asked to quit.
func (d *Driver) Handle(intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone, engineinput.ActionZoomIn, engineinput.ActionZoomOut:
		return false
	case engineinput.ActionDump:
		d.dump()
		return false
	}

	if d.Menu.Active() {
		d.Menu.Handle(intent)
		return d.Menu.Quit()
	}

	// Quitting mid-night opens the pause menu instead.
	if intent.Action == engineinput.ActionQuit || intent.Action == engineinput.ActionBack {
		d.Session.Apply(gameplay.Pause{})
		return false
	}
	gameplay.ProcessIntent(d.Session, intent)
	return false
}

// Frame builds the frame to draw.
func (d *Driver) Frame() Frame {
	return BuildFrame(d.Session)
}

// MenuView returns the menu page to draw, or false while a night is running.
func (d *Driver) MenuView() (menu.View, bool) {
	if d.Session.Snapshot().Phase == state.PhasePlaying {
		return menu.View{}, false
	}
	return d.Menu.View(), true
}

func (d *Driver) dump() {
	path, err := devtools.DumpToFile(d.dumpDir, d.Session)
	if err != nil {
		d.log.WithError(err).Warn("state dump failed")
		d.Session.Notify(gotext.Get("DUMP_FAILED"))
		return
	}
	d.log.WithField("path", path).Info("state dump written")
	d.Session.Notify(fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path))
}
