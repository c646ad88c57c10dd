package main

import (
	"context"
	"testing"

	"github.com/kaique/pubdesk/internal/config"
)

func TestNotifyReplacesSlot(t *testing.T) {
	m := newModel(context.Background(), config.Config{}, &fakeGateway{})

	m.notify("primeira", noticeSuccess)
	first := m.notice.token
	m.notify("segunda", noticeError)

	if m.notice.text != "segunda" {
		t.Fatalf("notice = %q, want the newer message", m.notice.text)
	}
	if m.notice.token == first {
		t.Error("each notification must get a fresh token")
	}
}

func TestStaleExpiryIsNoOp(t *testing.T) {
	m := newModel(context.Background(), config.Config{}, &fakeGateway{})

	m.notify("primeira", noticeSuccess)
	stale := m.notice.token
	m.notify("segunda", noticeError)

	m.expireNotice(stale)
	if m.notice.text != "segunda" {
		t.Fatalf("stale timer cleared the slot, notice = %q", m.notice.text)
	}

	m.expireNotice(m.notice.token)
	if m.notice.text != "" {
		t.Errorf("matching token should clear the slot, notice = %q", m.notice.text)
	}
}

func TestNotifySchedulesExpiry(t *testing.T) {
	m := newModel(context.Background(), config.Config{}, &fakeGateway{})
	if cmd := m.notify("olá", noticeSuccess); cmd == nil {
		t.Fatal("notify must return the expiry command")
	}
}
