package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Transient notifications
// ---------------------------------------------------------------------------

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeError
)

// noticeTTL is how long a notification stays visible unless superseded.
const noticeTTL = 5 * time.Second

// notice is the single notification slot. Each notify bumps the token; an
// expiry tick only clears the slot when its token still matches, so a
// stale timer never erases a newer message.
type notice struct {
	text  string
	kind  noticeKind
	token int
}

// notify replaces the current notification and returns the command that
// schedules its expiry.
func (m *model) notify(text string, kind noticeKind) tea.Cmd {
	m.notice.token++
	m.notice.text = text
	m.notice.kind = kind
	token := m.notice.token
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{token: token}
	})
}

// expireNotice clears the slot if the expired timer belongs to the message
// currently shown.
func (m *model) expireNotice(token int) {
	if m.notice.token == token {
		m.notice.text = ""
	}
}
