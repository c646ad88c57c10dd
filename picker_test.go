package main

import (
	"testing"
)

func pickerRoster() []string {
	return []string{"Kaique", "Admin", "Larissa"}
}

func TestRankAuthorsEmptyQueryKeepsOrder(t *testing.T) {
	got := rankAuthors(pickerRoster(), "")
	want := pickerRoster()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rankAuthors[%d] = %q, want server order %v", i, got[i], want)
		}
	}
}

func TestRankAuthorsPrefixBeatsSubstring(t *testing.T) {
	got := rankAuthors([]string{"Brandim", "Admin", "Adriano"}, "ad")
	if got[0] != "Admin" && got[0] != "Adriano" {
		t.Fatalf("expected a prefix match first, got %v", got)
	}
	if got[2] != "Brandim" {
		t.Errorf("substring match should rank after prefixes, got %v", got)
	}
}

func TestRankAuthorsTypoStillRanks(t *testing.T) {
	got := rankAuthors(pickerRoster(), "larisa")
	if got[0] != "Larissa" {
		t.Errorf("expected edit distance to surface Larissa, got %v", got)
	}
}

func TestNewPickerPositionsCursorOnCurrent(t *testing.T) {
	p := newAuthorPicker(pickerRoster(), "Admin")
	if p.selected() != "Admin" {
		t.Fatalf("selected = %q, want current author", p.selected())
	}

	p = newAuthorPicker(pickerRoster(), "")
	if p.cursor != 0 || p.selected() != "" {
		t.Errorf("empty current should start on the placeholder row")
	}
}

func TestPickerFilterClampsCursor(t *testing.T) {
	p := newAuthorPicker(pickerRoster(), "Larissa")
	p.typeQuery("kai")
	if p.cursor >= p.rowCount() {
		t.Fatalf("cursor %d out of range after refilter (%d rows)", p.cursor, p.rowCount())
	}
	p.backspaceQuery()
	p.backspaceQuery()
	p.backspaceQuery()
	if p.query != "" {
		t.Errorf("query = %q, want empty after backspaces", p.query)
	}
	if len(p.filtered) != 3 {
		t.Errorf("filtered = %v, want full roster back", p.filtered)
	}
}

func TestPickerMoveBounds(t *testing.T) {
	p := newAuthorPicker(pickerRoster(), "")
	p.moveUp()
	if p.cursor != 0 {
		t.Error("moveUp must not leave the placeholder row upward")
	}
	for i := 0; i < 10; i++ {
		p.moveDown()
	}
	if p.cursor != p.rowCount()-1 {
		t.Errorf("cursor = %d, want last row %d", p.cursor, p.rowCount()-1)
	}
}
