package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/kaique/pubdesk/internal/config"
	"github.com/kaique/pubdesk/internal/gateway"
	"github.com/kaique/pubdesk/internal/session"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "Pubdesk"

// publicationGateway is the remote API surface the orchestrator depends on.
// *gateway.Client satisfies it; tests inject a recording fake.
type publicationGateway interface {
	ListPublications(ctx context.Context) ([]gateway.Publication, error)
	GetPublication(ctx context.Context, id string) (gateway.Publication, error)
	CreatePublication(ctx context.Context, p gateway.Publication) (gateway.Publication, error)
	UpdatePublication(ctx context.Context, id string, p gateway.Publication) (gateway.Publication, error)
	DeletePublication(ctx context.Context, id string) error
	ListAuthors(ctx context.Context) ([]string, error)
}

// fallbackAuthors is the display-only degrade path used when the roster
// fetch fails. It is never sent to the server or persisted.
var fallbackAuthors = []string{"Kaique", "Admin", "Larissa"}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type pubsLoadedMsg struct {
	pubs []gateway.Publication
	err  error
}

type authorsLoadedMsg struct {
	authors []string
	err     error
}

type pubFetchedMsg struct {
	pub gateway.Publication
	err error
}

type pubSavedMsg struct {
	pub     gateway.Publication
	updated bool
	err     error
}

type pubDeletedMsg struct {
	err error
}

type noticeExpiredMsg struct {
	token int
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	ctx context.Context
	gw  publicationGateway
	cfg config.Config

	session session.State
	form    formState
	picker  *authorPicker // author selector overlay when non-nil

	pubs    []gateway.Publication
	authors []string
	notice  notice

	ready    bool
	cursor   int
	topIndex int
	width    int
	height   int
	keys     keyMap
}

func newModel(ctx context.Context, cfg config.Config, gw publicationGateway) model {
	return model{
		ctx:  ctx,
		gw:   gw,
		cfg:  cfg,
		keys: newKeyMap(),
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / View (Update lives in update.go)
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadPublicationsCmd(), m.loadAuthorsCmd())
}

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render("Carregando publicações...")
	}

	header := renderHeader(appName, m.session.Mode(), m.width)
	statusLine := m.renderNotice()
	footer := m.renderFooter(m.footerBindings())

	var body string
	if m.session.Mode() == session.Editing {
		body = m.renderSection(m.form.title(), renderForm(m.form, m.listContentWidth()))
	} else {
		content := renderPublicationList(m.pubs, m.cursor, m.topIndex, m.visibleCards(), m.listContentWidth(), m.cfg.UI.DateFormat)
		body = m.renderSection("Publicações", content)
	}

	main := header + "\n\n" + body

	if m.picker != nil {
		return m.composeOverlay(main, statusLine, footer, renderAuthorPicker(m.picker))
	}
	if id := m.session.PendingDeleteID(); id != "" {
		return m.composeOverlay(main, statusLine, footer, renderConfirmModal(m.lookupTitle(id)))
	}
	return m.placeWithFooter(main, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m model) lookupTitle(id string) string {
	for _, p := range m.pubs {
		if p.ID == id {
			return p.Titulo
		}
	}
	return ""
}

func (m model) footerBindings() []key.Binding {
	if m.picker != nil {
		return m.keys.pickerHelp()
	}
	if m.session.PendingDeleteID() != "" {
		return m.keys.confirmHelp()
	}
	if m.session.Mode() == session.Editing {
		return m.keys.formHelp()
	}
	return m.keys.listingHelp()
}

// applyAuthors installs the roster, degrading to the fallback set when the
// fetch failed. Roster failure is deliberately not user-visible.
func (m *model) applyAuthors(msg authorsLoadedMsg) {
	if msg.err != nil {
		log.Printf("autores: usando roster padrão: %v", msg.err)
		m.authors = fallbackAuthors
		return
	}
	m.authors = msg.authors
}

// visibleCards returns how many publication cards fit in the current
// terminal height.
func (m *model) visibleCards() int {
	if m.height == 0 {
		return 4
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	sectionHeaderHeight := sectionHeaderLineCount()
	scrollIndicator := 1
	available := m.height - 2 - headerHeight - headerGap - frameV - sectionHeaderHeight - scrollIndicator
	cards := available / cardLineCount()
	if cards < 1 {
		cards = 1
	}
	return cards
}

func (m *model) listContentWidth() int {
	if m.width == 0 {
		return 80
	}
	contentWidth := m.sectionContentWidth()
	if contentWidth < 20 {
		return 20
	}
	return contentWidth
}

func (m *model) sectionContentWidth() int {
	if m.width == 0 {
		return 80
	}
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 1 {
		contentWidth = 1
	}
	return contentWidth
}

func (m *model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	if m.width <= 2 {
		return m.width
	}
	// Keep a hard right-side margin to avoid border clipping.
	return m.width - 2
}

func (m *model) ensureCursorInWindow() {
	visible := m.visibleCards()
	if visible <= 0 {
		return
	}
	total := len(m.pubs)
	if m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

func sectionHeaderLineCount() int {
	return 2
}
