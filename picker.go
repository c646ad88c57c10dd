package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ---------------------------------------------------------------------------
// Author selector overlay
// ---------------------------------------------------------------------------

// pickerPlaceholder is the first row of every roster listing; selecting it
// yields an empty author, which the save validation rejects.
const pickerPlaceholder = "Selecione um autor"

// authorPicker is the modal selector for the autor field. Typing filters
// the roster; row 0 is always the placeholder.
type authorPicker struct {
	roster   []string
	filtered []string
	query    string
	cursor   int
}

func newAuthorPicker(roster []string, current string) *authorPicker {
	p := &authorPicker{roster: roster}
	p.refilter()
	if current != "" {
		for i, a := range p.filtered {
			if a == current {
				p.cursor = i + 1 // offset for placeholder row
				break
			}
		}
	}
	return p
}

// rowCount includes the placeholder row.
func (p *authorPicker) rowCount() int { return len(p.filtered) + 1 }

// selected returns the author under the cursor, or "" on the placeholder.
func (p *authorPicker) selected() string {
	if p.cursor <= 0 || p.cursor > len(p.filtered) {
		return ""
	}
	return p.filtered[p.cursor-1]
}

func (p *authorPicker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *authorPicker) moveDown() {
	if p.cursor < p.rowCount()-1 {
		p.cursor++
	}
}

func (p *authorPicker) typeQuery(s string) {
	p.query += s
	p.refilter()
}

func (p *authorPicker) backspaceQuery() {
	p.query = trimLastRune(p.query)
	p.refilter()
}

func (p *authorPicker) refilter() {
	p.filtered = rankAuthors(p.roster, p.query)
	if p.cursor >= p.rowCount() {
		p.cursor = p.rowCount() - 1
	}
}

// rankAuthors orders the roster against a query: prefix matches first,
// then substring matches, then everything else by edit distance. An empty
// query keeps the server-provided order.
func rankAuthors(roster []string, query string) []string {
	out := make([]string, len(roster))
	copy(out, roster)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	score := func(name string) int {
		n := strings.ToLower(name)
		switch {
		case strings.HasPrefix(n, q):
			return 0
		case strings.Contains(n, q):
			return 1
		default:
			return 2 + levenshtein.ComputeDistance(n, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) < score(out[j])
	})
	return out
}
