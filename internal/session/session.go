// Package session holds the mutable per-run UI state as an explicit state
// machine: which of the two top-level surfaces is visible, which record a
// form edit is bound to, and which record a delete confirmation is pending
// for. It never touches the network or the terminal.
package session

// ViewMode is one of the two mutually exclusive top-level surfaces.
type ViewMode int

const (
	// Listing shows the publication cards.
	Listing ViewMode = iota
	// Editing shows the create/alter form.
	Editing
)

func (v ViewMode) String() string {
	if v == Editing {
		return "editing"
	}
	return "listing"
}

// State is the session state store. The zero value is a fresh session in
// Listing mode with no edit target and no pending delete.
type State struct {
	mode            ViewMode
	editTarget      string
	pendingDeleteID string
}

// Mode returns the active view mode.
func (s *State) Mode() ViewMode { return s.mode }

// EditTarget returns the id bound to the current edit, or "" when the form
// (if visible) is a creation form.
func (s *State) EditTarget() string { return s.editTarget }

// PendingDeleteID returns the id awaiting delete confirmation, or "".
func (s *State) PendingDeleteID() string { return s.pendingDeleteID }

// EnterEditing switches to the form surface. An empty target means a fresh
// creation form; a non-empty target binds the next save to that id.
func (s *State) EnterEditing(target string) {
	s.mode = Editing
	s.editTarget = target
}

// EnterListing switches back to the list surface and unbinds the edit
// target. Called after a successful save or a cancel; a failed save must
// NOT call this, so the user can retry without re-entering data.
func (s *State) EnterListing() {
	s.mode = Listing
	s.editTarget = ""
}

// RequestDelete records the id the confirmation dialog is about.
func (s *State) RequestDelete(id string) {
	s.pendingDeleteID = id
}

// ClearDeleteRequest drops the pending delete id. Called unconditionally
// when the dialog closes, whether confirmed, cancelled or failed.
func (s *State) ClearDeleteRequest() {
	s.pendingDeleteID = ""
}
