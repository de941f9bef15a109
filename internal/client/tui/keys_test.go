package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/passvault/internal/client/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func kinds(evs []session.Event) []session.EventKind {
	out := make([]session.EventKind, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Kind)
	}
	return out
}

func TestTranslate_NavigationEverywhere(t *testing.T) {
	k := defaultKeyMap()
	states := []session.State{session.Start{}, session.Login{}, session.ShowAllVaults{}}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want session.EventKind
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, session.EventUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, session.EventDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, session.EventEnter},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, session.EventEsc},
	}
	for _, tt := range tests {
		for _, st := range states {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, []session.EventKind{tt.want}, kinds(k.Translate(tt.msg, st)))
			})
		}
	}
}

func TestTranslate_TextInput(t *testing.T) {
	k := defaultKeyMap()
	st := session.CreateAccount{}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []session.Event
	}{
		{"rune", runes("a"), []session.Event{session.Insert('a')}},
		{"browse letter is text", runes("d"), []session.Event{session.Insert('d')}},
		{"q is text", runes("q"), []session.Event{session.Insert('q')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []session.Event{session.Insert(' ')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true},
			[]session.Event{session.Insert('a'), session.Insert('b')}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []session.Event{session.Key(session.EventLeft)}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []session.Event{session.Key(session.EventRight)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []session.Event{session.Key(session.EventBackspace)}},
		{"generate", tea.KeyMsg{Type: tea.KeyCtrlG}, []session.Event{session.Key(session.EventGenerate)}},
		{"alt rune ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{"tab ignored", tea.KeyMsg{Type: tea.KeyTab}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := k.Translate(tt.msg, st)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_BrowseActions(t *testing.T) {
	k := defaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want session.EventKind
	}{
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, session.EventToggleSecret},
		{"p toggles", runes("p"), session.EventToggleSecret},
		{"u copies username", runes("u"), session.EventCopyUsername},
		{"c copies secret", runes("c"), session.EventCopySecret},
		{"d deletes", runes("d"), session.EventDelete},
		{"e edits", runes("e"), session.EventEdit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []session.EventKind{tt.want}, kinds(k.Translate(tt.msg, session.ViewVaultDetail{})))
			assert.Equal(t, []session.EventKind{tt.want}, kinds(k.Translate(tt.msg, session.ShowAllVaults{})))
		})
	}

	assert.Empty(t, k.Translate(runes("x"), session.ShowAllVaults{}))
	assert.Empty(t, k.Translate(tea.KeyMsg{Type: tea.KeyLeft}, session.ShowAllVaults{}))
}

func TestTranslate_MenuIgnoresText(t *testing.T) {
	k := defaultKeyMap()
	assert.Empty(t, k.Translate(runes("a"), session.Menu{}))
	assert.Empty(t, k.Translate(runes("d"), session.Start{}))
	assert.Empty(t, k.Translate(tea.KeyMsg{Type: tea.KeyCtrlG}, session.Menu{}))
}

func TestQuits(t *testing.T) {
	k := defaultKeyMap()
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	for _, st := range []session.State{session.Start{}, session.Menu{}, session.Login{}, session.ShowAllVaults{}, session.ViewVaultDetail{}} {
		assert.True(t, k.Quits(ctrlC, st), "ctrl+c in %T", st)
	}

	assert.True(t, k.Quits(runes("q"), session.Start{}))
	assert.True(t, k.Quits(runes("q"), session.Menu{}))
	assert.False(t, k.Quits(runes("q"), session.Login{}))
	assert.False(t, k.Quits(runes("q"), session.SearchVault{}))
	assert.False(t, k.Quits(runes("q"), session.ShowAllVaults{}))
}
