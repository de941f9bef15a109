package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/client/models"
)

// newListView wraps entries (already in display order) in a list positioned
// on the first row. An empty list becomes a single sentinel row with
// emptyText and never shows headers.
func newListView(entries []models.VaultEntry, headers bool, emptyText string) ListView {
	return ListView{
		Entries:     models.OrSentinel(entries, emptyText),
		ShowHeaders: headers && len(entries) > 0,
	}
}

// listLine is one display line of a ListView: a group header or an entry.
type listLine struct {
	header string
	entry  int // -1 for headers
}

// lines lays out the list, inserting a header before the first entry of
// every new leading letter when headers are enabled.
func (lv ListView) lines() []listLine {
	out := make([]listLine, 0, len(lv.Entries)+8)
	prev := ""
	for i, e := range lv.Entries {
		if lv.ShowHeaders && !e.Sentinel {
			letter := models.GroupLetter(e.Account)
			if i == 0 || letter != prev {
				out = append(out, listLine{header: letter, entry: -1})
			}
			prev = letter
		}
		out = append(out, listLine{entry: i})
	}
	return out
}

// lineOf returns the display line of entry i.
func (lv ListView) lineOf(i int) int {
	for n, l := range lv.lines() {
		if l.entry == i {
			return n
		}
	}
	return 0
}

// ensureVisible adjusts Scroll so the selected entry's line lies in
// [Scroll, Scroll+height).
func (lv *ListView) ensureVisible(height int) {
	height = max(height, 1)
	if lv.Selected == 0 {
		lv.Scroll = 0
	}
	line := lv.lineOf(lv.Selected)
	if line < lv.Scroll {
		lv.Scroll = line
	} else if line >= lv.Scroll+height {
		lv.Scroll = line - height + 1
	}
}

// move shifts the selection by delta, clamped to the list bounds.
func (lv *ListView) move(delta, height int) {
	lv.Selected += delta
	if lv.Selected >= len(lv.Entries) {
		lv.Selected = len(lv.Entries) - 1
	}
	if lv.Selected < 0 {
		lv.Selected = 0
	}
	lv.ensureVisible(height)
}

func (m *Machine) handleList(ctx context.Context, s *Session, st ShowAllVaults, ev Event) (State, error) {
	switch ev.Kind {
	case EventUp:
		st.List.move(-1, s.ViewportHeight)
	case EventDown:
		st.List.move(1, s.ViewportHeight)
	case EventToggleSecret:
		st.ShowPassword = !st.ShowPassword
	case EventEsc:
		return Menu{}, nil
	case EventEnter:
		e, ok := st.List.SelectedEntry()
		if !ok || e.Sentinel {
			return st, nil
		}
		return ViewVaultDetail{
			Entry:   e,
			Secret:  m.reveal(ctx, s, e),
			Obscure: true,
			Back:    st.clone(),
		}, nil
	}
	return st, nil
}

// clone copies the list so later edits of the entries slice cannot reach
// the snapshot.
func (st ShowAllVaults) clone() ShowAllVaults {
	st.List.Entries = append([]models.VaultEntry(nil), st.List.Entries...)
	return st
}

func (m *Machine) handleDetail(ctx context.Context, s *Session, st ViewVaultDetail, ev Event) (State, error) {
	switch ev.Kind {
	case EventEsc:
		return st.Back, nil

	case EventToggleSecret:
		st.Obscure = !st.Obscure

	case EventCopyUsername:
		m.copy(ctx, st.Entry.Username)
		m.info(s, "Username copied to clipboard.")

	case EventCopySecret:
		if !st.Secret.OK() {
			m.fail(s, "Cannot copy: "+st.Secret.String()+".")
			return st, nil
		}
		m.copy(ctx, st.Secret.Text)
		m.info(s, "Password copied to clipboard.")

	case EventDelete:
		if _, err := m.store.Delete(ctx, s.Identity.UserID, st.Entry.Account, st.Entry.Username); err != nil {
			return nil, storeError("delete entry", err)
		}
		m.logger.Info(ctx, "entry deleted", "entry", st.Entry.ID)

		back := st.Back.clone()
		left := models.RemoveMatching(back.List.Entries, st.Entry.Account, st.Entry.Username)
		emptyText := models.NoResultsText
		if back.List.ShowHeaders {
			emptyText = models.EmptyVaultText
		}
		back.List = newListView(left, back.List.ShowHeaders, emptyText)
		m.info(s, "Vault deleted.")
		return back, nil

	case EventEdit:
		return EditVault{Input: NewInput(st.Entry.Account), Original: st}, nil
	}
	return st, nil
}

// copy writes text to the clipboard. Failures are ignored.
func (m *Machine) copy(ctx context.Context, text string) {
	if err := m.clipboard.WriteAll(text); err != nil {
		m.logger.Debug(ctx, "clipboard write failed", "error", err)
	}
}

func (m *Machine) handleSearch(ctx context.Context, s *Session, st SearchVault, ev Event) (State, error) {
	if st.Input.Edit(ev) {
		return st, nil
	}

	switch ev.Kind {
	case EventEsc:
		return Menu{Selected: MenuSearch}, nil
	case EventEnter:
	default:
		return st, nil
	}

	query := strings.TrimSpace(st.Input.String())
	if query == "" {
		return st, nil
	}

	found, err := m.store.Search(ctx, s.Identity.UserID, query)
	if err != nil {
		return nil, storeError("search entries", err)
	}
	return ShowAllVaults{List: newListView(found, false, models.NoResultsText)}, nil
}
