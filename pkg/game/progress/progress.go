// Package progress is the persistence boundary for what the player has
// unlocked between sessions.
package progress

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("no saved progress")

// Progress is the persisted unlock state.
type Progress struct {
	UnlockedNights []int
	UnlockedLore   []string
}

// Default is a fresh save: night 1 playable, no lore.
func Default() Progress {
	return Progress{UnlockedNights: []int{1}}
}

// Unlock returns p with the given night and lore ids added. Existing entries
// are kept; nights stay sorted.
func (p Progress) Unlock(night int, lore ...string) Progress {
	out := p.Clone()
	if night > 0 && !slices.Contains(out.UnlockedNights, night) {
		out.UnlockedNights = append(out.UnlockedNights, night)
		slices.Sort(out.UnlockedNights)
	}
	for _, id := range lore {
		if !slices.Contains(out.UnlockedLore, id) {
			out.UnlockedLore = append(out.UnlockedLore, id)
		}
	}
	return out
}

// Clone returns an independent copy.
func (p Progress) Clone() Progress {
	return Progress{
		UnlockedNights: slices.Clone(p.UnlockedNights),
		UnlockedLore:   slices.Clone(p.UnlockedLore),
	}
}

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// Store loads and saves progress.
type Store interface {
	Load(ctx context.Context) (Progress, error)
	Save(ctx context.Context, p Progress) error
}

// MemoryStore keeps progress for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	saved *Progress
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return Progress{}, ErrNotFound
	}
	return m.saved.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := p.Clone()
	m.saved = &c
	return nil
}

// LoadOrDefault loads from s, falling back to Default when nothing was saved.
func LoadOrDefault(ctx context.Context, s Store) (Progress, error) {
	p, err := s.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Progress{}, err
	}
	if len(p.UnlockedNights) == 0 {
		p.UnlockedNights = []int{1}
	}
	return p, nil
}
