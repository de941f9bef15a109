package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/passvault/internal/client/session"
)

// chromeLines is the number of screen rows outside the list window.
const chromeLines = 8

type tickMsg time.Time

// Model is the bubbletea model driving one session.
type Model struct {
	ctx     context.Context
	machine *session.Machine
	session *session.Session
	keys    keyMap
	help    help.Model
	tick    time.Duration
	err     error
}

// New wires a session to its machine. A zero tick disables periodic redraws.
func New(ctx context.Context, m *session.Machine, s *session.Session, tick time.Duration) Model {
	return Model{
		ctx:     ctx,
		machine: m,
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		tick:    tick,
	}
}

// Err returns the store failure that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	if m.tick <= 0 {
		return nil
	}
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.handle(session.Resize(max(msg.Height-chromeLines, 1)))

	case tea.KeyMsg:
		if m.keys.Quits(msg, m.session.State) {
			return m, tea.Quit
		}
		for _, ev := range m.keys.Translate(msg, m.session.State) {
			next, cmd := m.handle(ev)
			m = next.(Model)
			if cmd != nil {
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m Model) handle(ev session.Event) (tea.Model, tea.Cmd) {
	if err := m.machine.Handle(m.ctx, m.session, ev); err != nil {
		var se *session.StoreError
		if !errors.As(err, &se) {
			se = &session.StoreError{Op: "handle " + ev.Kind.String(), Err: err}
		}
		m.err = se
		return m, tea.Quit
	}
	if m.session.Quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	v := m.machine.View(m.session)

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")

	for i, l := range v.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if v.Cursor != nil && v.Cursor.Line == i {
			b.WriteString(renderWithCursor(l, v.Cursor.Col))
			continue
		}
		b.WriteString(lineStyle(l.Kind).Render(l.Text))
	}

	if v.Notice != nil {
		b.WriteString("\n")
		b.WriteString(noticeStyle(v.Notice.Kind).Render(v.Notice.Text))
	}

	footer := v.Help
	if global := m.help.ShortHelpView([]key.Binding{m.keys.ForceQuit}); global != "" {
		if footer != "" {
			footer += " • "
		}
		footer += global
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(footer))

	return containerStyle.Render(b.String())
}

// renderWithCursor draws l with the rune at col in reverse video. A cursor
// past the end is drawn as a reversed blank.
func renderWithCursor(l session.Line, col int) string {
	runes := []rune(l.Text)
	col = min(max(col, 0), len(runes))
	style := lineStyle(l.Kind)

	under := " "
	rest := ""
	if col < len(runes) {
		under = string(runes[col])
		rest = string(runes[col+1:])
	}
	return style.Render(string(runes[:col])) + cursorStyle.Render(under) + style.Render(rest)
}
