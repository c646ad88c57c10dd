package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kaique/pubdesk/internal/gateway"
	"github.com/kaique/pubdesk/internal/session"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pubsLoadedMsg:
		return m.handlePubsLoaded(msg)
	case authorsLoadedMsg:
		m.applyAuthors(msg)
		return m, nil
	case pubFetchedMsg:
		return m.handlePubFetched(msg)
	case pubSavedMsg:
		return m.handlePubSaved(msg)
	case pubDeletedMsg:
		return m.handlePubDeleted(msg)
	case noticeExpiredMsg:
		m.expireNotice(msg.token)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if m.session.PendingDeleteID() != "" {
			return m.updateConfirm(msg)
		}
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		if m.session.Mode() == session.Editing {
			return m.updateForm(msg)
		}
		return m.updateListing(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Result-message handlers
// ---------------------------------------------------------------------------

func (m model) handlePubsLoaded(msg pubsLoadedMsg) (tea.Model, tea.Cmd) {
	m.ready = true
	if msg.err != nil {
		// No partial render: the list area stays empty under the error.
		m.pubs = nil
		m.cursor = 0
		m.topIndex = 0
		return m, m.notify("Erro ao carregar publicações: "+msg.err.Error(), noticeError)
	}
	m.pubs = msg.pubs
	m.ensureCursorInWindow()
	return m, nil
}

func (m model) handlePubFetched(msg pubFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Stay in Listing.
		return m, m.notify("Erro ao carregar publicação para edição: "+msg.err.Error(), noticeError)
	}
	m.form = formFromRecord(msg.pub)
	m.session.EnterEditing(msg.pub.ID)
	return m, nil
}

func (m model) handlePubSaved(msg pubSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Remain in Editing with the entered values intact.
		return m, m.notify("Erro ao salvar publicação: "+msg.err.Error(), noticeError)
	}
	verb := "criada"
	if msg.updated {
		verb = "atualizada"
	}
	cmd := m.notify("Publicação "+verb+" com sucesso!", noticeSuccess)
	m.session.EnterListing()
	return m, tea.Batch(cmd, m.loadPublicationsCmd())
}

func (m model) handlePubDeleted(msg pubDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notify("Erro ao excluir publicação: "+msg.err.Error(), noticeError)
	}
	cmd := m.notify("Publicação excluída com sucesso!", noticeSuccess)
	return m, tea.Batch(cmd, m.loadPublicationsCmd())
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (m model) updateListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "n":
		m.form = newCreateForm()
		m.session.EnterEditing("")
		return m, nil
	case "enter", "e":
		if p, ok := m.cursorPub(); ok {
			return m, m.fetchPublicationCmd(p.ID)
		}
		return m, nil
	case "d", "x":
		if p, ok := m.cursorPub(); ok {
			m.session.RequestDelete(p.ID)
		}
		return m, nil
	case "r":
		return m, m.loadPublicationsCmd()
	case "up", "k", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorInWindow()
		}
		return m, nil
	case "down", "j", "ctrl+n":
		if m.cursor < len(m.pubs)-1 {
			m.cursor++
			m.ensureCursorInWindow()
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.session.EnterListing()
		return m, m.loadPublicationsCmd()
	case "tab", "down":
		m.form.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil
	case "enter":
		if m.form.focus == fieldAutor {
			m.picker = newAuthorPicker(m.authors, m.form.autor)
			return m, nil
		}
		m.form.focusNext()
		return m, nil
	case "ctrl+s":
		if errMsg := m.form.validate(); errMsg != "" {
			// Short-circuits before any network contact.
			return m, m.notify(errMsg, noticeError)
		}
		return m, m.savePublicationCmd(m.form.intent, m.form.record())
	case "backspace":
		m.form.backspace()
		return m, nil
	}
	if s, ok := typedText(msg); ok {
		m.form.insert(s)
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.picker = nil
		return m, nil
	case "enter":
		m.form.autor = m.picker.selected()
		m.picker = nil
		return m, nil
	case "up", "ctrl+p":
		m.picker.moveUp()
		return m, nil
	case "down", "ctrl+n":
		m.picker.moveDown()
		return m, nil
	case "backspace":
		m.picker.backspaceQuery()
		return m, nil
	}
	if s, ok := typedText(msg); ok {
		m.picker.typeQuery(s)
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "y":
		id := m.session.PendingDeleteID()
		// The dialog closes and the pending id clears no matter how the
		// delete itself turns out.
		m.session.ClearDeleteRequest()
		if id == "" {
			return m, nil
		}
		return m, m.deletePublicationCmd(id)
	case "esc", "n":
		m.session.ClearDeleteRequest()
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m model) cursorPub() (gateway.Publication, bool) {
	if m.cursor < 0 || m.cursor >= len(m.pubs) {
		return gateway.Publication{}, false
	}
	return m.pubs[m.cursor], true
}

// typedText extracts printable input from a key message.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}
