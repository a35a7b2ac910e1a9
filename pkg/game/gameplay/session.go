// Package gameplay owns the game state of one player session: it runs the
// night through the scheduler and is the single entry point for commands.
package gameplay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/engine/sim"
	"containmentbreach/pkg/game/actions"
	"containmentbreach/pkg/game/ai"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/power"
	"containmentbreach/pkg/game/progress"
	"containmentbreach/pkg/game/setup"
	"containmentbreach/pkg/game/state"
	"containmentbreach/pkg/game/subjects"
)

// Epoch is the default start of simulated time.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options configures a Session. Zero fields take defaults.
type Options struct {
	Graph      *facility.Graph
	Roster     subjects.Roster
	Tuning     config.Tuning
	Difficulty nights.Difficulty
	Seed       int64
	Rand       sim.Rand // Overrides Seed
	Store      progress.Store
	Bus        *events.Bus // Optional
	Base       time.Time   // Simulated time origin
	MaxStep    time.Duration
}

func (o Options) withDefaults() Options {
	if o.Graph == nil {
		o.Graph = setup.Facility()
	}
	if o.Roster == nil {
		o.Roster = subjects.DefaultRoster
	}
	if o.Tuning.TickInterval <= 0 {
		o.Tuning = config.DefaultTuning()
	}
	if o.Store == nil {
		o.Store = progress.NewMemoryStore()
	}
	if o.Base.IsZero() {
		o.Base = Epoch
	}
	if o.MaxStep <= 0 {
		o.MaxStep = sim.DefaultMaxStep
	}
	return o
}

// JournalEntry is an applied command and the running time it was applied at.
type JournalEntry struct {
	At      time.Duration
	Command Command
}

// Session is the single owner of a GameState. Every exported method is safe
// for concurrent use.
type Session struct {
	mu sync.Mutex

	id      string
	opts    Options
	gs      state.GameState
	clock   *sim.Clock
	sched   *sim.Scheduler
	rng     sim.Rand
	ai      *ai.Engine
	actions *actions.Resolver
	economy power.Economy

	gen     uint64
	buf     eventBuffer
	journal []JournalEntry
	log     *logrus.Entry
}

// NewSession loads saved progress and returns a session on the main menu.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	p, err := progress.LoadOrDefault(ctx, opts.Store)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = sim.NewRand(opts.Seed)
	}
	clock := sim.NewClock(opts.Base)
	id := uuid.NewString()

	s := &Session{
		id:      id,
		opts:    opts,
		gs:      state.New(p.UnlockedNights, p.UnlockedLore),
		clock:   clock,
		sched:   sim.NewScheduler(clock, sim.WithMaxStep(opts.MaxStep)),
		rng:     rng,
		ai:      ai.New(opts.Graph, opts.Roster, opts.Tuning, rng),
		actions: actions.NewResolver(opts.Graph, opts.Roster, opts.Tuning),
		economy: power.New(opts.Tuning, opts.Difficulty),
		log:     logger.WithComponent("session").WithField("session", id),
	}
	s.gs.Difficulty = opts.Difficulty
	return s, nil
}

// ID identifies the session in logs and on the event feed.
func (s *Session) ID() string {
	return s.id
}

// Graph returns the facility layout.
func (s *Session) Graph() *facility.Graph {
	return s.opts.Graph
}

// Roster returns the subject definitions in play.
func (s *Session) Roster() subjects.Roster {
	return s.opts.Roster
}

// Tuning returns the gameplay constants.
func (s *Session) Tuning() config.Tuning {
	return s.opts.Tuning
}

// Now returns the current simulated time.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Apply validates and executes cmd. Accepted commands are journaled.
func (s *Session) Apply(cmd Command) actions.Result {
	if cmd == nil {
		return actions.Reject(actions.ReasonUnknownCommand)
	}

	s.mu.Lock()
	at := s.clock.Elapsed()
	res := cmd.apply(s, s.clock.Now())
	if res.OK {
		s.journal = append(s.journal, JournalEntry{At: at, Command: cmd})
	}
	out := s.flush()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"command": cmd.String(), "ok": res.OK, "reason": res.Reason.String()}).Debug("command")
	s.publish(out)
	return res
}

// Snapshot returns a deep copy of the state with the breach countdown filled
// in.
func (s *Session) Snapshot() state.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.gs.Clone()
	c.BreachRemaining = c.Breach.Remaining(s.clock.Now())
	return c
}

// Pings returns the subjects the camera in roomID shows right now. Nothing
// shows through an offline camera or without power.
func (s *Session) Pings(roomID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gs.PowerOut || s.gs.Power <= 0 || !s.gs.Cameras.IsOnline(roomID) {
		return nil
	}
	var out []string
	for _, id := range s.gs.SubjectsIn(roomID) {
		def, ok := s.opts.Roster.ByID(id)
		if ok && ai.Visible(def, s.gs.SweepCount) {
			out = append(out, id)
		}
	}
	return out
}

// CanUseLure reports whether a lure could go into roomID now.
func (s *Session) CanUseLure(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.CanUseLure(&s.gs, roomID, s.clock.Now())
}

// CanUseShock reports whether roomID could be shocked now.
func (s *Session) CanUseShock(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.CanUseShock(&s.gs, roomID, s.clock.Now())
}

// CanUseDoors reports whether the door controls respond now.
func (s *Session) CanUseDoors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.CanUseDoors(&s.gs, s.clock.Now())
}

// Notify appends msg to the on-screen message log.
func (s *Session) Notify(msg string) {
	if msg == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gs.AddMessage(msg)
}

// Journal returns the accepted commands so far.
func (s *Session) Journal() []JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]JournalEntry(nil), s.journal...)
}

// Advance runs d of simulated time through the scheduler.
func (s *Session) Advance(d time.Duration) {
	s.sched.Advance(d)
}

// Run drives the session in real time until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session running")
	err := s.sched.Run(ctx)
	s.log.WithError(err).Info("session stopped")
	return err
}

// Replay builds a fresh session from opts and re-applies journal at the
// running times it was recorded at. The result matches the original when opts
// draws its randomness from Seed.
func Replay(ctx context.Context, opts Options, journal []JournalEntry) (*Session, error) {
	s, err := NewSession(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, e := range journal {
		if d := e.At - s.clock.Elapsed(); d > 0 {
			s.Advance(d)
		}
		if res := s.Apply(e.Command); !res.OK {
			return nil, fmt.Errorf("replay %s at %v: %s", e.Command, e.At, res.Reason)
		}
	}
	return s, nil
}

// eventBuffer collects the events produced while the lock is held.
type eventBuffer struct {
	gen    uint64
	events []events.Event
}

func (b *eventBuffer) Emit(ev events.Event) {
	ev.Generation = b.gen
	b.events = append(b.events, ev)
}

// flush moves buffered events into the message log and hands them back for
// publishing once the lock is released.
func (s *Session) flush() []events.Event {
	out := s.buf.events
	s.buf.events = nil
	for _, ev := range out {
		if msg := events.Describe(ev); msg != "" {
			s.gs.AddMessage(msg)
		}
	}
	return out
}

func (s *Session) publish(evs []events.Event) {
	if s.opts.Bus == nil {
		return
	}
	for _, ev := range evs {
		s.opts.Bus.Publish(ev)
	}
}
