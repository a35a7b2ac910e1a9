package menu

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "containmentbreach/pkg/engine/input"
	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/lore"
	"containmentbreach/pkg/game/state"
)

// Screen is the menu page currently shown.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenNights
	ScreenLore
	ScreenDocument
	ScreenControls
	ScreenPause
	ScreenResult
)

// View is everything a front-end needs to draw the current menu page.
type View struct {
	Screen   Screen
	Title    string
	Items    []MenuItem
	Selected int
	HelpText string
	Body     string // Document text or result summary
}

// Controller drives the menus from player intents and turns selections into
// session commands. It does nothing while a night is running unpaused.
type Controller struct {
	session *gameplay.Session

	screen Screen
	back   Screen // Where the controls page returns to
	menu   *Menu
	doc    lore.Document
	quit   bool
	log    *logrus.Entry
}

// NewController returns a controller on the main menu.
func NewController(s *gameplay.Session) *Controller {
	c := &Controller{session: s, log: logger.WithComponent("menu")}
	c.show(ScreenMain)
	return c
}

// Active reports whether the menus own the input right now.
func (c *Controller) Active() bool {
	return c.session.Snapshot().Phase != state.PhasePlaying
}

// Quit reports whether the player chose to leave the game.
func (c *Controller) Quit() bool {
	return c.quit
}

// Screen returns the page currently shown.
func (c *Controller) Screen() Screen {
	c.sync(c.session.Snapshot())
	return c.screen
}

// View returns the page to draw.
func (c *Controller) View() View {
	gs := c.session.Snapshot()
	c.sync(gs)
	c.refresh(gs)

	v := View{
		Screen:   c.screen,
		Title:    c.menu.Title,
		Items:    c.menu.Items(),
		Selected: c.menu.SelectedIndex(),
		HelpText: c.menu.HelpText,
	}
	if v.HelpText == "" {
		if item := c.menu.Selected(); item != nil {
			v.HelpText = item.GetHelpText()
		}
	}
	switch c.screen {
	case ScreenDocument:
		v.Body = c.doc.Content
	case ScreenResult:
		v.Body = resultBody(gs, c.session)
	}
	return v
}

// Handle applies one intent to the current page.
func (c *Controller) Handle(intent engineinput.Intent) {
	gs := c.session.Snapshot()
	c.sync(gs)
	if gs.Phase == state.PhasePlaying {
		return
	}
	if intent.Action == engineinput.ActionQuit && c.screen == ScreenMain {
		c.quit = true
		return
	}
	if intent.Action == engineinput.ActionPause && c.screen == ScreenPause {
		c.apply(gameplay.Resume{})
		return
	}

	c.refresh(gs)
	switch c.menu.Handle(intent.Action) {
	case OutcomeActivated:
		c.activate(gs, c.menu.Selected())
	case OutcomeBack:
		c.goBack()
	}
}

// sync moves to the page that matches the session phase.
func (c *Controller) sync(gs state.GameState) {
	switch gs.Phase {
	case state.PhasePaused:
		if c.screen != ScreenPause && c.screen != ScreenControls {
			c.show(ScreenPause)
		}
	case state.PhaseGameOver, state.PhaseVictory:
		if c.screen != ScreenResult {
			c.show(ScreenResult)
		}
	case state.PhaseLore:
		if c.screen != ScreenLore && c.screen != ScreenDocument {
			c.show(ScreenLore)
		}
	case state.PhaseMenu:
		switch c.screen {
		case ScreenPause, ScreenResult, ScreenLore, ScreenDocument:
			c.show(ScreenMain)
		}
	}
}

// refresh rebuilds items whose labels depend on session state.
func (c *Controller) refresh(gs state.GameState) {
	switch c.screen {
	case ScreenMain:
		c.menu.SetItems(MainItems(gs.Difficulty))
	case ScreenNights:
		c.menu.SetItems(NightItems(gs.IsNightUnlocked))
	case ScreenLore:
		c.menu.SetItems(LoreItems(gs.UnlockedLore))
	}
}

func (c *Controller) show(screen Screen) {
	if screen == ScreenControls {
		c.back = c.screen
	}
	c.screen = screen
	gs := c.session.Snapshot()
	switch screen {
	case ScreenMain:
		c.menu = New(gotext.Get("MENU_TITLE"), MainItems(gs.Difficulty))
	case ScreenNights:
		c.menu = New(gotext.Get("MENU_NIGHTS_TITLE"), NightItems(gs.IsNightUnlocked))
	case ScreenLore:
		c.menu = New(gotext.Get("MENU_LORE_TITLE"), LoreItems(gs.UnlockedLore))
	case ScreenDocument:
		c.menu = New(c.doc.Heading(), nil)
	case ScreenControls:
		c.menu = New(gotext.Get("MENU_CONTROLS_TITLE"), BindingItems())
	case ScreenPause:
		c.menu = New(gotext.Get("MENU_PAUSED_TITLE"), PauseItems())
	case ScreenResult:
		c.menu = New(resultTitle(gs), []MenuItem{&emptyItem{label: gotext.Get("MENU_CONTINUE")}})
	}
}

func (c *Controller) activate(gs state.GameState, item MenuItem) {
	switch it := item.(type) {
	case *MainMenuItem:
		switch it.Action {
		case MainMenuActionNights:
			c.show(ScreenNights)
		case MainMenuActionDifficulty:
			c.apply(gameplay.SetDifficulty{Difficulty: NextDifficulty(gs.Difficulty)})
		case MainMenuActionLore:
			if c.apply(gameplay.OpenLore{}) {
				c.show(ScreenLore)
			}
		case MainMenuActionControls:
			c.show(ScreenControls)
		case MainMenuActionQuit:
			c.quit = true
		}
	case *NightItem:
		c.apply(gameplay.StartNight{Night: it.Night})
	case *LoreItem:
		c.doc = it.Doc
		c.show(ScreenDocument)
	case *GameplayMenuItem:
		switch it.Action {
		case GameplayMenuActionResume:
			c.apply(gameplay.Resume{})
		case GameplayMenuActionControls:
			c.show(ScreenControls)
		case GameplayMenuActionQuitToTitle:
			if c.apply(gameplay.ReturnToMenu{}) {
				c.show(ScreenMain)
			}
		}
	}
}

func (c *Controller) goBack() {
	switch c.screen {
	case ScreenNights:
		c.show(ScreenMain)
	case ScreenLore:
		if c.apply(gameplay.ReturnToMenu{}) {
			c.show(ScreenMain)
		}
	case ScreenDocument:
		c.show(ScreenLore)
	case ScreenControls:
		c.show(c.back)
	case ScreenPause:
		c.apply(gameplay.Resume{})
	case ScreenResult:
		if c.apply(gameplay.ReturnToMenu{}) {
			c.show(ScreenMain)
		}
	}
}

// apply sends cmd and reports rejections in the session's message log.
func (c *Controller) apply(cmd gameplay.Command) bool {
	res := c.session.Apply(cmd)
	if !res.OK {
		c.log.WithFields(logrus.Fields{"command": cmd.String(), "reason": res.Reason.String()}).Debug("menu command rejected")
		c.menu.HelpText = res.Reason.Message()
	}
	return res.OK
}

func resultTitle(gs state.GameState) string {
	if gs.Phase == state.PhaseVictory {
		return fmt.Sprintf(gotext.Get("RESULT_VICTORY_TITLE"), gs.CurrentNight)
	}
	return gotext.Get("RESULT_GAMEOVER_TITLE")
}

func resultBody(gs state.GameState, s *gameplay.Session) string {
	if gs.Phase == state.PhaseVictory {
		return gotext.Get("RESULT_VICTORY_BODY")
	}
	def, ok := s.Roster().ByID(gs.KilledBy)
	if !ok {
		return gotext.Get("RESULT_GAMEOVER_BODY")
	}
	return fmt.Sprintf(gotext.Get("RESULT_KILLED_BY"), def.ID, def.Name, def.DeathHint)
}
