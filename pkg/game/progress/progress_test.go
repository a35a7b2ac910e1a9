package progress

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestUnlock(t *testing.T) {
	p := Default().Unlock(3, "a").Unlock(2, "b", "a").Unlock(3)

	if want := []int{1, 2, 3}; !slices.Equal(p.UnlockedNights, want) {
		t.Errorf("UnlockedNights = %v, want %v", p.UnlockedNights, want)
	}
	if want := []string{"a", "b"}; !slices.Equal(p.UnlockedLore, want) {
		t.Errorf("UnlockedLore = %v, want %v", p.UnlockedLore, want)
	}
}

func TestUnlockDoesNotAlias(t *testing.T) {
	base := Progress{UnlockedNights: make([]int, 1, 4)}
	base.UnlockedNights[0] = 1
	_ = base.Unlock(2)
	if len(base.UnlockedNights) != 1 {
		t.Errorf("Unlock modified receiver: %v", base.UnlockedNights)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on empty store err = %v, want ErrNotFound", err)
	}
	p := Default().Unlock(2, "dossier-z01")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() err = %v", err)
	}
	p.UnlockedNights[0] = 99

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if !slices.Equal(got.UnlockedNights, []int{1, 2}) {
		t.Errorf("Load().UnlockedNights = %v, want [1 2]", got.UnlockedNights)
	}
}

func TestLoadOrDefault(t *testing.T) {
	got, err := LoadOrDefault(context.Background(), NewMemoryStore())
	if err != nil {
		t.Fatalf("LoadOrDefault() err = %v", err)
	}
	if !slices.Equal(got.UnlockedNights, []int{1}) {
		t.Errorf("LoadOrDefault() nights = %v, want [1]", got.UnlockedNights)
	}
}
