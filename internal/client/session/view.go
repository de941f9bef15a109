package session

import (
	"fmt"
	"strings"
)

// LineKind tells the presentation layer how to style a line.
type LineKind int

const (
	LineText LineKind = iota
	LineLabel
	LineSelected
	LineHeader
	LineMuted
	LineSecret
	LineError
)

// Line is one styled line of a view.
type Line struct {
	Text string
	Kind LineKind
}

// Cursor is a rune position inside Lines.
type Cursor struct {
	Line int
	Col  int
}

// View is the renderable description of a session.
type View struct {
	Title  string
	Lines  []Line
	Cursor *Cursor
	Notice *Notice
	Help   string
}

const (
	inputPrompt = "> "
	masked      = "********"
)

// View describes s for rendering. It has no side effects.
func (m *Machine) View(s *Session) View {
	var v View
	switch st := s.State.(type) {
	case Start:
		v = menuView("passvault", startItems, st.Selected)
		v.Help = "↑/↓ move • enter select • q quit"
	case Menu:
		title := "Menu"
		if s.Identity != nil {
			title = fmt.Sprintf("Menu (%s)", s.Identity.Username)
		}
		v = menuView(title, menuItems, st.Selected)
		v.Help = "↑/↓ move • enter select • q quit"
	case Login:
		v = wizardView("Login", []string{"Username:", "Password:"}, []string{st.Username}, st.Step, st.Input, st.Step == StepSecond)
		v.Help = "enter confirm • esc back"
	case Register:
		v = wizardView("Register", []string{"Choose a username:", "Choose a password:", "Confirm password:"},
			[]string{st.Username, strings.Repeat("*", len([]rune(st.Password)))}, st.Step, st.Input, st.Step > StepFirst)
		v.Help = "enter confirm • esc back"
	case CreateAccount:
		v = wizardView("Adding vault", entryLabels, []string{st.Account, st.Username}, st.Step, st.Input, false)
		v.Help = wizardHelp(st.Step)
	case EditVault:
		v = wizardView("Editing vault", entryLabels, []string{st.Account, st.Username}, st.Step, st.Input, false)
		v.Help = wizardHelp(st.Step)
	case SearchVault:
		v = wizardView("Search vault", []string{"Account contains:"}, nil, StepFirst, st.Input, false)
		v.Help = "enter search • esc back"
	case ShowAllVaults:
		v = m.listView(s, st, s.ViewportHeight)
		v.Help = "↑/↓ move • enter open • p reveal • esc back"
	case ViewVaultDetail:
		v = detailView(st)
		v.Help = "p reveal • u copy username • c copy password • e edit • d delete • esc back"
	}

	if s.Notice.Active(m.now()) {
		n := *s.Notice
		v.Notice = &n
	}
	return v
}

var entryLabels = []string{"Enter website name:", "Enter email/username:", "Enter password:"}

func wizardHelp(step int) string {
	if step == StepThird {
		return "enter save • ctrl+g generate • esc cancel"
	}
	return "enter next • esc cancel"
}

func menuView(title string, items []string, selected int) View {
	v := View{Title: title}
	for i, item := range items {
		if i == selected {
			v.Lines = append(v.Lines, Line{Text: "> " + item, Kind: LineSelected})
			continue
		}
		v.Lines = append(v.Lines, Line{Text: "  " + item, Kind: LineText})
	}
	return v
}

// wizardView renders the finished steps as muted lines followed by the
// prompt and input of the current step.
func wizardView(title string, labels, done []string, step int, in Input, mask bool) View {
	v := View{Title: title}
	for i := 0; i < step && i < len(done); i++ {
		v.Lines = append(v.Lines, Line{Text: labels[i] + " " + done[i], Kind: LineMuted})
	}
	if step < len(labels) {
		v.Lines = append(v.Lines, Line{Text: labels[step], Kind: LineLabel})
	}

	text := in.String()
	kind := LineText
	if mask {
		text = strings.Repeat("*", len(in.Buffer))
		kind = LineSecret
	}
	v.Lines = append(v.Lines, Line{Text: inputPrompt + text, Kind: kind})
	v.Cursor = &Cursor{Line: len(v.Lines) - 1, Col: len([]rune(inputPrompt)) + in.Cursor}
	return v
}

// listView renders the visible window lines[Scroll : Scroll+height].
func (m *Machine) listView(s *Session, st ShowAllVaults, height int) View {
	v := View{Title: "Vaults"}
	lv := st.List
	all := lv.lines()

	start := min(max(lv.Scroll, 0), len(all))
	end := min(start+max(height, 1), len(all))

	for _, l := range all[start:end] {
		if l.entry < 0 {
			v.Lines = append(v.Lines, Line{Text: l.header, Kind: LineHeader})
			continue
		}
		e := lv.Entries[l.entry]
		if e.Sentinel {
			v.Lines = append(v.Lines, Line{Text: e.Account, Kind: LineMuted})
			continue
		}

		text := e.Account + " | " + e.Username
		kind := LineText
		if l.entry == lv.Selected {
			kind = LineSelected
			if st.ShowPassword && s.Identity != nil {
				res := m.cipher(s).Reveal(e.Secret, s.Identity.Key)
				text += " | " + res.String()
				if !res.OK() {
					kind = LineError
				}
			}
		}
		v.Lines = append(v.Lines, Line{Text: text, Kind: kind})
	}
	return v
}

func detailView(st ViewVaultDetail) View {
	v := View{Title: "Vault"}
	v.Lines = append(v.Lines,
		Line{Text: "Account:", Kind: LineLabel},
		Line{Text: st.Entry.Account, Kind: LineText},
		Line{Text: "Username:", Kind: LineLabel},
		Line{Text: st.Entry.Username, Kind: LineText},
		Line{Text: "Password:", Kind: LineLabel},
	)
	switch {
	case !st.Secret.OK():
		v.Lines = append(v.Lines, Line{Text: st.Secret.String(), Kind: LineError})
	case st.Obscure:
		v.Lines = append(v.Lines, Line{Text: masked, Kind: LineSecret})
	default:
		v.Lines = append(v.Lines, Line{Text: st.Secret.Text, Kind: LineSecret})
	}
	return v
}
