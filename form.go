package main

import (
	"fmt"

	"github.com/kaique/pubdesk/internal/gateway"
)

// ---------------------------------------------------------------------------
// Edit form state
// ---------------------------------------------------------------------------

// saveIntent records up front whether the form was opened for a creation or
// for an update of a specific id, instead of inferring it at save time.
type saveIntent struct {
	id string
}

func (i saveIntent) isUpdate() bool { return i.id != "" }

// Form field focus order.
const (
	fieldTitulo = iota
	fieldAutor
	fieldData
	fieldTexto
	fieldCount
)

var fieldLabels = [fieldCount]string{"Título", "Autor", "Data de publicação", "Texto"}

const minTextoLen = 10

// Client-side validation messages, matching the backend's language.
const (
	msgSelectAuthor  = "Por favor, selecione um autor"
	msgTextoTooShort = "O texto deve ter no mínimo 10 caracteres"
)

// formState holds the in-progress field buffers. A failed save leaves it
// untouched so the user can retry without re-entering anything.
type formState struct {
	intent saveIntent
	titulo string
	autor  string
	data   string // ISO date string, passed through as typed
	texto  string
	focus  int
}

// newCreateForm returns an empty creation form.
func newCreateForm() formState {
	return formState{}
}

// formFromRecord returns a form pre-filled from a fetched record, bound to
// its id for the subsequent save.
func formFromRecord(p gateway.Publication) formState {
	return formState{
		intent: saveIntent{id: p.ID},
		titulo: p.Titulo,
		autor:  p.Autor,
		data:   p.DataPublicacao,
		texto:  p.Texto,
	}
}

// record converts the buffers into the outbound payload. The publicado
// flag is server-owned and never set here.
func (f formState) record() gateway.Publication {
	return gateway.Publication{
		Titulo:         f.titulo,
		Autor:          f.autor,
		DataPublicacao: f.data,
		Texto:          f.texto,
	}
}

// validate applies the pre-submit checks in order; the first failing check
// wins. It returns "" when the form may be submitted.
func (f formState) validate() string {
	if f.autor == "" {
		return msgSelectAuthor
	}
	if len([]rune(f.texto)) < minTextoLen {
		return msgTextoTooShort
	}
	return ""
}

func (f formState) title() string {
	if f.intent.isUpdate() {
		return fmt.Sprintf("Alterar publicação - ID %s", f.intent.id)
	}
	return "Incluir nova publicação"
}

func (f *formState) focusNext() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *formState) focusPrev() {
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
}

// insert appends text to the focused buffer. The autor field is a
// selector, not a free-text buffer, so typing into it is ignored.
func (f *formState) insert(s string) {
	switch f.focus {
	case fieldTitulo:
		f.titulo += s
	case fieldData:
		f.data += s
	case fieldTexto:
		f.texto += s
	}
}

func (f *formState) backspace() {
	switch f.focus {
	case fieldTitulo:
		f.titulo = trimLastRune(f.titulo)
	case fieldData:
		f.data = trimLastRune(f.data)
	case fieldTexto:
		f.texto = trimLastRune(f.texto)
	}
}

func (f formState) fieldValue(i int) string {
	switch i {
	case fieldTitulo:
		return f.titulo
	case fieldAutor:
		return f.autor
	case fieldData:
		return f.data
	case fieldTexto:
		return f.texto
	}
	return ""
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
