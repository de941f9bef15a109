package session

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/client/models"
)

// generate replaces in with a fresh password, cursor at the end.
func (m *Machine) generate(ctx context.Context, s *Session, in *Input) {
	pw, err := m.generator.Generate()
	if err != nil {
		m.logger.Warn(ctx, "password generation failed", "error", err)
		m.fail(s, "Could not generate a password.")
		return
	}
	in.Set(pw)
}

func (m *Machine) handleCreate(ctx context.Context, s *Session, st CreateAccount, ev Event) (State, error) {
	if st.Input.Edit(ev) {
		return st, nil
	}

	switch ev.Kind {
	case EventEsc:
		return Menu{Selected: MenuCreate}, nil
	case EventGenerate:
		if st.Step == StepThird {
			m.generate(ctx, s, &st.Input)
		}
		return st, nil
	case EventEnter:
	default:
		return st, nil
	}

	value := st.Input.String()
	switch st.Step {
	case StepFirst:
		return CreateAccount{Step: StepSecond, Account: value}, nil
	case StepSecond:
		return CreateAccount{Step: StepThird, Account: st.Account, Username: value}, nil
	}

	blob, err := m.cipher(s).Encrypt(value, s.Identity.Key)
	if err != nil {
		return nil, storeError("encrypt secret", err)
	}

	e := &models.VaultEntry{
		OwnerID:  s.Identity.UserID,
		Account:  st.Account,
		Username: st.Username,
		Secret:   blob,
	}
	if err := m.store.Create(ctx, e); err != nil {
		return nil, storeError("create entry", err)
	}

	m.logger.Info(ctx, "entry created", "entry", e.ID)
	m.info(s, "Vault saved.")
	return Menu{Selected: MenuCreate}, nil
}

func (m *Machine) handleEdit(ctx context.Context, s *Session, st EditVault, ev Event) (State, error) {
	if st.Input.Edit(ev) {
		return st, nil
	}

	switch ev.Kind {
	case EventEsc:
		return st.Original, nil
	case EventGenerate:
		if st.Step == StepThird {
			m.generate(ctx, s, &st.Input)
		}
		return st, nil
	case EventEnter:
	default:
		return st, nil
	}

	value := st.Input.String()
	switch st.Step {
	case StepFirst:
		st.Account = value
		st.Step = StepSecond
		st.Input = NewInput(st.Original.Entry.Username)
		return st, nil
	case StepSecond:
		st.Username = value
		st.Step = StepThird
		st.Input = NewInput(st.Original.Secret.Text)
		return st, nil
	}

	blob, err := m.cipher(s).Encrypt(value, s.Identity.Key)
	if err != nil {
		return nil, storeError("encrypt secret", err)
	}

	orig := st.Original.Entry
	updated := models.VaultEntry{Account: st.Account, Username: st.Username, Secret: blob}
	n, err := m.store.Update(ctx, s.Identity.UserID, orig.Account, orig.Username, updated)
	if err != nil {
		return nil, storeError("update entry", err)
	}
	m.logger.Info(ctx, "entry updated", "entry", orig.ID, "rows", n)

	list, err := m.store.List(ctx, s.Identity.UserID)
	if err != nil {
		return nil, storeError("list entries", err)
	}

	back := ShowAllVaults{List: newListView(list, true, models.EmptyVaultText)}
	if len(list) == 0 {
		return back, nil
	}

	idx := models.IndexOf(list, st.Account, st.Username)
	if idx < 0 {
		idx = 0
	}
	back.List.Selected = idx
	back.List.ensureVisible(s.ViewportHeight)

	e := list[idx]
	m.info(s, "Vault updated.")
	return ViewVaultDetail{
		Entry:   e,
		Secret:  m.reveal(ctx, s, e),
		Obscure: true,
		Back:    back.clone(),
	}, nil
}
