package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaique/pubdesk/internal/gateway"
	"github.com/kaique/pubdesk/internal/session"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerModeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	// Loading / status text
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Section containers
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// Modal overlay
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Help key styling
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// Publication cards
	cardTitleStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cardMetaStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	cardTextStyle   = lipgloss.NewStyle().Foreground(colorSubtext1)
	unpublishedTag  = lipgloss.NewStyle().Foreground(colorError).Bold(true).Render("NÃO PUBLICADO")
	placeholderText = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Form
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	fieldFocusedStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	fieldValueStyle   = lipgloss.NewStyle().Foreground(colorText)

	// Scroll indicator
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(appName string, mode session.ViewMode, width int) string {
	name := headerAppStyle.Render(appName)
	modeLabel := "Listagem"
	if mode == session.Editing {
		modeLabel = "Formulário"
	}
	content := name + "  " + headerModeStyle.Render(modeLabel)
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(content)
}

func (m model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	sectionContent := header + "\n" + separator + "\n" + content
	section := listBoxStyle.Width(m.sectionWidth()).Render(sectionContent)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) renderNotice() string {
	style := statusBarStyle
	switch m.notice.kind {
	case noticeError:
		style = style.Foreground(colorError)
	case noticeSuccess:
		style = style.Foreground(colorSuccess)
	}
	flat := strings.ReplaceAll(m.notice.text, "\n", " ")
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

func (m model) composeOverlay(base, statusLine, footer, content string) string {
	baseView := m.placeWithFooter(base, statusLine, footer)
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + content
	}
	modalContent := lipgloss.NewStyle().Width(min(60, m.width-10)).Render(content)
	modal := modalStyle.Render(modalContent)
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, m.width, targetHeight)
}

// ---------------------------------------------------------------------------
// Publication list
// ---------------------------------------------------------------------------

// cardLineCount is the fixed height of one publication card, including the
// separating blank line. The scroll window math depends on it.
func cardLineCount() int {
	return 4
}

// renderPublicationList projects the collection into cards. It is a pure
// function of its arguments: rendering the same input twice yields the
// same output.
func renderPublicationList(pubs []gateway.Publication, cursor, topIndex, visible, width int, dateFormat string) string {
	if len(pubs) == 0 {
		return placeholderText.Render("Nenhuma publicação cadastrada.")
	}

	end := topIndex + visible
	if end > len(pubs) {
		end = len(pubs)
	}

	var lines []string
	for i := topIndex; i < end; i++ {
		lines = append(lines, renderPublicationCard(pubs[i], i == cursor, width, dateFormat)...)
	}

	total := len(pubs)
	if total > 0 && visible > 0 {
		start := topIndex + 1
		endIdx := end
		indicator := scrollStyle.Render(fmt.Sprintf("── exibindo %d-%d de %d ──", start, endIdx, total))
		lines = append(lines, indicator)
	}

	return strings.Join(lines, "\n")
}

func renderPublicationCard(p gateway.Publication, focused bool, width int, dateFormat string) []string {
	prefix := "  "
	if focused {
		prefix = cursorStyle.Render("> ")
	}
	bodyWidth := width - 2
	if bodyWidth < 5 {
		bodyWidth = 5
	}

	meta := "Autor: " + p.Autor + " | Publicado em: " + formatDate(p.DataPublicacao, dateFormat)
	metaLine := cardMetaStyle.Render(truncate(meta, bodyWidth))
	if !p.Publicado {
		metaLine = cardMetaStyle.Render(truncate(meta+" | ", bodyWidth)) + unpublishedTag
	}

	return []string{
		prefix + cardTitleStyle.Render(truncate(p.Titulo, bodyWidth)),
		"  " + metaLine,
		"  " + cardTextStyle.Render(truncate(p.Texto, bodyWidth)),
		"",
	}
}

// formatDate renders an ISO-like date string in the configured display
// format. Unparsable input is shown as-is.
func formatDate(iso, layout string) string {
	if layout == "" {
		layout = "02/01/2006"
	}
	for _, in := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(in, iso); err == nil {
			return t.Format(layout)
		}
	}
	return iso
}

// ---------------------------------------------------------------------------
// Edit form
// ---------------------------------------------------------------------------

func renderForm(f formState, width int) string {
	var lines []string
	for i := 0; i < fieldCount; i++ {
		label := fieldLabelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = fieldFocusedStyle.Render("> " + fieldLabels[i])
		} else {
			label = "  " + label
		}

		value := f.fieldValue(i)
		switch {
		case i == fieldAutor && value == "":
			value = placeholderText.Render(pickerPlaceholder)
		case i == f.focus && i != fieldAutor:
			value = fieldValueStyle.Render(value) + cursorStyle.Render("_")
		default:
			value = fieldValueStyle.Render(value)
		}

		lines = append(lines, label, "    "+truncate(value, width-4), "")
	}
	hint := placeholderText.Render("enter abre o seletor de autor · ctrl+s salva · esc cancela")
	lines = append(lines, hint)
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Overlays
// ---------------------------------------------------------------------------

func renderAuthorPicker(p *authorPicker) string {
	lines := []string{
		titleStyle.Render("Selecionar autor"),
		statusStyle.Render("/ ") + fieldValueStyle.Render(p.query) + cursorStyle.Render("_"),
		"",
	}
	for i := 0; i < p.rowCount(); i++ {
		prefix := "  "
		if i == p.cursor {
			prefix = cursorStyle.Render("> ")
		}
		if i == 0 {
			lines = append(lines, prefix+placeholderText.Render(pickerPlaceholder))
			continue
		}
		lines = append(lines, prefix+fieldValueStyle.Render(p.filtered[i-1]))
	}
	return strings.Join(lines, "\n")
}

func renderConfirmModal(title string) string {
	lines := []string{
		titleStyle.Render("Confirmar exclusão"),
		"",
		fieldValueStyle.Render("Tem certeza que deseja excluir esta publicação?"),
	}
	if title != "" {
		lines = append(lines, cardMetaStyle.Render(truncate(title, 50)))
	}
	lines = append(lines, "", placeholderText.Render("enter confirma · esc cancela"))
	return strings.Join(lines, "\n")
}
