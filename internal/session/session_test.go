package session

import "testing"

func TestZeroValueIsListing(t *testing.T) {
	var s State
	if s.Mode() != Listing {
		t.Fatalf("mode = %v, want Listing", s.Mode())
	}
	if s.EditTarget() != "" {
		t.Fatalf("edit target = %q, want empty", s.EditTarget())
	}
	if s.PendingDeleteID() != "" {
		t.Fatalf("pending delete = %q, want empty", s.PendingDeleteID())
	}
}

func TestEnterEditingBindsTarget(t *testing.T) {
	var s State
	s.EnterEditing("42")
	if s.Mode() != Editing {
		t.Fatalf("mode = %v, want Editing", s.Mode())
	}
	if s.EditTarget() != "42" {
		t.Fatalf("edit target = %q, want 42", s.EditTarget())
	}
}

func TestEnterEditingEmptyTargetMeansCreate(t *testing.T) {
	var s State
	s.EnterEditing("42")
	s.EnterEditing("")
	if s.Mode() != Editing || s.EditTarget() != "" {
		t.Fatalf("mode=%v target=%q, want Editing with empty target", s.Mode(), s.EditTarget())
	}
}

func TestEnterListingClearsTarget(t *testing.T) {
	var s State
	s.EnterEditing("42")
	s.EnterListing()
	if s.Mode() != Listing {
		t.Fatalf("mode = %v, want Listing", s.Mode())
	}
	if s.EditTarget() != "" {
		t.Fatalf("edit target = %q, want empty after EnterListing", s.EditTarget())
	}
}

func TestDeleteRequestLifecycle(t *testing.T) {
	var s State
	s.RequestDelete("a1")
	if s.PendingDeleteID() != "a1" {
		t.Fatalf("pending delete = %q, want a1", s.PendingDeleteID())
	}

	// a new request overwrites the previous one (last writer wins)
	s.RequestDelete("b2")
	if s.PendingDeleteID() != "b2" {
		t.Fatalf("pending delete = %q, want b2", s.PendingDeleteID())
	}

	s.ClearDeleteRequest()
	if s.PendingDeleteID() != "" {
		t.Fatalf("pending delete = %q, want empty after clear", s.PendingDeleteID())
	}
}

func TestDeleteRequestDoesNotTouchViewMode(t *testing.T) {
	var s State
	s.EnterEditing("7")
	s.RequestDelete("a1")
	s.ClearDeleteRequest()
	if s.Mode() != Editing || s.EditTarget() != "7" {
		t.Fatalf("delete request mutated view state: mode=%v target=%q", s.Mode(), s.EditTarget())
	}
}
