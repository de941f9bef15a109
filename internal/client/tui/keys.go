package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/passvault/internal/client/session"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Back      key.Binding
	Backspace key.Binding
	Generate  key.Binding

	Toggle     key.Binding
	CopyUser   key.Binding
	CopySecret key.Binding
	Delete     key.Binding
	Edit       key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),

		Toggle:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("p", "reveal")),
		CopyUser:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy username")),
		CopySecret: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy password")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),

		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// mode groups states by how they read the keyboard.
type mode int

const (
	modeMenu mode = iota
	modeText
	modeBrowse
)

func modeOf(st session.State) mode {
	switch st.(type) {
	case session.Login, session.Register, session.CreateAccount, session.EditVault, session.SearchVault:
		return modeText
	case session.ShowAllVaults, session.ViewVaultDetail:
		return modeBrowse
	}
	return modeMenu
}

// Quits reports whether msg ends the program while st is on screen.
func (k keyMap) Quits(msg tea.KeyMsg, st session.State) bool {
	if key.Matches(msg, k.ForceQuit) {
		return true
	}
	return modeOf(st) == modeMenu && key.Matches(msg, k.Quit)
}

// Translate maps a key press to session events. Keys that mean nothing in
// st yield no events. A paste yields one insert per rune.
func (k keyMap) Translate(msg tea.KeyMsg, st session.State) []session.Event {
	switch {
	case key.Matches(msg, k.Up):
		return events(session.EventUp)
	case key.Matches(msg, k.Down):
		return events(session.EventDown)
	case key.Matches(msg, k.Enter):
		return events(session.EventEnter)
	case key.Matches(msg, k.Back):
		return events(session.EventEsc)
	}

	switch modeOf(st) {
	case modeText:
		return k.translateText(msg)
	case modeBrowse:
		return k.translateBrowse(msg)
	}
	return nil
}

func (k keyMap) translateText(msg tea.KeyMsg) []session.Event {
	switch {
	case key.Matches(msg, k.Left):
		return events(session.EventLeft)
	case key.Matches(msg, k.Right):
		return events(session.EventRight)
	case key.Matches(msg, k.Backspace):
		return events(session.EventBackspace)
	case key.Matches(msg, k.Generate):
		return events(session.EventGenerate)
	}

	if msg.Alt || (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) {
		return nil
	}
	out := make([]session.Event, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, session.Insert(r))
	}
	return out
}

func (k keyMap) translateBrowse(msg tea.KeyMsg) []session.Event {
	switch {
	case key.Matches(msg, k.Toggle):
		return events(session.EventToggleSecret)
	case key.Matches(msg, k.CopyUser):
		return events(session.EventCopyUsername)
	case key.Matches(msg, k.CopySecret):
		return events(session.EventCopySecret)
	case key.Matches(msg, k.Delete):
		return events(session.EventDelete)
	case key.Matches(msg, k.Edit):
		return events(session.EventEdit)
	}
	return nil
}

func events(kind session.EventKind) []session.Event {
	return []session.Event{session.Key(kind)}
}
