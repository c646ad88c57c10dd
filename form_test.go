package main

import (
	"testing"

	"github.com/kaique/pubdesk/internal/gateway"
)

func TestFormFromRecordBindsIntent(t *testing.T) {
	f := formFromRecord(gateway.Publication{
		ID:             "x9",
		Titulo:         "Título",
		Autor:          "Admin",
		DataPublicacao: "2026-05-01",
		Texto:          "um texto qualquer",
		Publicado:      true,
	})
	if !f.intent.isUpdate() {
		t.Fatal("form from a fetched record must carry an update intent")
	}
	if f.intent.id != "x9" {
		t.Errorf("intent id = %q, want x9", f.intent.id)
	}
	if f.titulo != "Título" || f.autor != "Admin" || f.data != "2026-05-01" {
		t.Error("form fields should mirror the fetched record")
	}
}

func TestRecordNeverSetsPublicado(t *testing.T) {
	f := formFromRecord(gateway.Publication{ID: "x9", Publicado: true})
	rec := f.record()
	if rec.Publicado {
		t.Error("publicado is server-owned and must not be sent")
	}
	if rec.ID != "" {
		t.Errorf("payload id = %q, want empty", rec.ID)
	}
}

func TestValidateOrderAuthorFirst(t *testing.T) {
	// both checks fail: the author message wins
	f := formState{texto: "curto"}
	if got := f.validate(); got != msgSelectAuthor {
		t.Fatalf("validate = %q, want %q", got, msgSelectAuthor)
	}

	f.autor = "Kaique"
	if got := f.validate(); got != msgTextoTooShort {
		t.Fatalf("validate = %q, want %q", got, msgTextoTooShort)
	}

	f.texto = "exatamente dez ou mais"
	if got := f.validate(); got != "" {
		t.Fatalf("validate = %q, want pass", got)
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	// 9 runes, more than 10 bytes
	f := formState{autor: "Kaique", texto: "ããããããããã"}
	if got := f.validate(); got != msgTextoTooShort {
		t.Errorf("validate = %q, want %q for 9 runes", got, msgTextoTooShort)
	}
	f.texto = "ãããããããããã"
	if got := f.validate(); got != "" {
		t.Errorf("validate = %q, want pass for 10 runes", got)
	}
}

func TestInsertIgnoresAuthorField(t *testing.T) {
	f := newCreateForm()
	f.focus = fieldAutor
	f.insert("abc")
	if f.autor != "" {
		t.Errorf("autor = %q, typing must not touch the selector field", f.autor)
	}

	f.focus = fieldTitulo
	f.insert("Olá")
	f.backspace()
	if f.titulo != "Ol" {
		t.Errorf("titulo = %q, want %q", f.titulo, "Ol")
	}
}

func TestFocusWraps(t *testing.T) {
	f := newCreateForm()
	for i := 0; i < fieldCount; i++ {
		f.focusNext()
	}
	if f.focus != fieldTitulo {
		t.Errorf("focus = %d after full cycle, want %d", f.focus, fieldTitulo)
	}
	f.focusPrev()
	if f.focus != fieldTexto {
		t.Errorf("focus = %d after wrap back, want %d", f.focus, fieldTexto)
	}
}

func TestFormTitleByIntent(t *testing.T) {
	if got := newCreateForm().title(); got != "Incluir nova publicação" {
		t.Errorf("create title = %q", got)
	}
	f := formState{intent: saveIntent{id: "a1"}}
	if got := f.title(); got != "Alterar publicação - ID a1" {
		t.Errorf("edit title = %q", got)
	}
}
