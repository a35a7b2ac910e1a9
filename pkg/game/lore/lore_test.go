package lore

import "testing"

func TestArchiveIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Archive {
		if seen[d.ID] {
			t.Errorf("duplicate document id %q", d.ID)
		}
		seen[d.ID] = true
		if d.UnlockedAfterNight < 1 || d.UnlockedAfterNight > 5 {
			t.Errorf("%s unlocks after night %d", d.ID, d.UnlockedAfterNight)
		}
	}
}

func TestUnlockedBy(t *testing.T) {
	got := UnlockedBy(1)
	if len(got) != 2 || got[0] != "protocol-door" || got[1] != "dossier-z01" {
		t.Errorf("UnlockedBy(1) = %v, want [protocol-door dossier-z01]", got)
	}
	if got := UnlockedBy(9); len(got) != 0 {
		t.Errorf("UnlockedBy(9) = %v, want none", got)
	}
}

func TestVisible(t *testing.T) {
	docs := Visible([]string{"dossier-z04", "missing", "protocol-door"})
	if len(docs) != 2 {
		t.Fatalf("Visible() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID != "protocol-door" || docs[1].ID != "dossier-z04" {
		t.Errorf("Visible() order = %s, %s", docs[0].ID, docs[1].ID)
	}
}

func TestHeading(t *testing.T) {
	d, ok := ByID("dossier-z07")
	if !ok {
		t.Fatal("ByID(dossier-z07) not found")
	}
	if got, want := d.Heading(), "[dossier] Subject Z-07"; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
}
