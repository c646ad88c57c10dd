package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kaique/pubdesk/internal/gateway"
)

// ---------------------------------------------------------------------------
// Gateway commands — each wraps one round trip into a result message
// ---------------------------------------------------------------------------

func (m model) loadPublicationsCmd() tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		pubs, err := gw.ListPublications(ctx)
		return pubsLoadedMsg{pubs: pubs, err: err}
	}
}

func (m model) loadAuthorsCmd() tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		authors, err := gw.ListAuthors(ctx)
		return authorsLoadedMsg{authors: authors, err: err}
	}
}

func (m model) fetchPublicationCmd(id string) tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		pub, err := gw.GetPublication(ctx, id)
		return pubFetchedMsg{pub: pub, err: err}
	}
}

// savePublicationCmd dispatches on the intent bound when the form was
// opened: a bound id updates that exact id, no id creates.
func (m model) savePublicationCmd(intent saveIntent, rec gateway.Publication) tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		if intent.isUpdate() {
			pub, err := gw.UpdatePublication(ctx, intent.id, rec)
			return pubSavedMsg{pub: pub, updated: true, err: err}
		}
		pub, err := gw.CreatePublication(ctx, rec)
		return pubSavedMsg{pub: pub, updated: false, err: err}
	}
}

func (m model) deletePublicationCmd(id string) tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		return pubDeletedMsg{err: gw.DeletePublication(ctx, id)}
	}
}
