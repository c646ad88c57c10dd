package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Reload  key.Binding
	UpDown  key.Binding
	Save    key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Select  key.Binding
	Field   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nova")),
		Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "alterar")),
		Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "excluir")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navegar")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "salvar")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
		Confirm: key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "confirmar")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "selecionar")),
		Field:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "campo")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	}
}

func (k keyMap) listingHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Reload, k.UpDown, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Field, k.Save, k.Cancel}
}

func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Select, k.Cancel}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
