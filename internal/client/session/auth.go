package session

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/common"
)

func (m *Machine) handleStart(ctx context.Context, s *Session, st Start, ev Event) (State, error) {
	switch ev.Kind {
	case EventUp, EventDown:
		st.Selected = moveSelection(st.Selected, len(startItems), ev)
	case EventEnter:
		switch st.Selected {
		case StartLogin:
			last, err := m.auth.LastUsername(ctx)
			if err != nil {
				return nil, storeError("read last username", err)
			}
			return Login{Input: NewInput(last)}, nil
		case StartRegister:
			return Register{}, nil
		case StartExit:
			s.Quit = true
		}
	}
	return st, nil
}

func (m *Machine) handleLogin(ctx context.Context, s *Session, st Login, ev Event) (State, error) {
	if st.Input.Edit(ev) {
		return st, nil
	}

	switch ev.Kind {
	case EventEsc:
		return Start{Selected: StartLogin}, nil
	case EventEnter:
	default:
		return st, nil
	}

	value := st.Input.String()
	switch st.Step {
	case StepFirst:
		if strings.TrimSpace(value) == "" {
			return st, nil
		}
		return Login{Step: StepSecond, Username: value}, nil
	}

	id, err := m.auth.Login(ctx, st.Username, value)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			m.fail(s, "Invalid username or password.")
			return Login{}, nil
		}
		return nil, storeError("login", err)
	}

	s.Identity = id
	m.info(s, "Welcome, "+id.Username+"!")
	return Menu{}, nil
}

func (m *Machine) handleRegister(ctx context.Context, s *Session, st Register, ev Event) (State, error) {
	if st.Input.Edit(ev) {
		return st, nil
	}

	switch ev.Kind {
	case EventEsc:
		return Start{Selected: StartRegister}, nil
	case EventEnter:
	default:
		return st, nil
	}

	value := st.Input.String()
	switch st.Step {
	case StepFirst:
		if strings.TrimSpace(value) == "" {
			return st, nil
		}
		taken, err := m.auth.UsernameTaken(ctx, value)
		if err != nil {
			return nil, storeError("check username", err)
		}
		if taken {
			m.fail(s, "Username already taken.")
			return Register{}, nil
		}
		return Register{Step: StepSecond, Username: value}, nil

	case StepSecond:
		if value == "" {
			return st, nil
		}
		return Register{Step: StepThird, Username: st.Username, Password: value}, nil
	}

	if value != st.Password {
		m.fail(s, "Passwords do not match.")
		return Register{Step: StepSecond, Username: st.Username}, nil
	}

	if err := m.auth.Register(ctx, st.Username, st.Password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			m.fail(s, "Username already taken.")
			return Register{}, nil
		}
		return nil, storeError("register", err)
	}

	id, err := m.auth.Login(ctx, st.Username, st.Password)
	if err != nil {
		return nil, storeError("login after register", err)
	}

	s.Identity = id
	m.logger.Info(ctx, "registered", "username", st.Username)
	m.info(s, "Account created. Welcome, "+id.Username+"!")
	return Menu{}, nil
}

func (m *Machine) handleMenu(ctx context.Context, s *Session, st Menu, ev Event) (State, error) {
	switch ev.Kind {
	case EventUp, EventDown:
		st.Selected = moveSelection(st.Selected, len(menuItems), ev)
		return st, nil
	case EventEnter:
	default:
		return st, nil
	}

	switch st.Selected {
	case MenuCreate:
		return CreateAccount{}, nil
	case MenuSearch:
		return SearchVault{}, nil
	case MenuShowAll:
		return m.showAll(ctx, s)
	case MenuLogout:
		m.logger.Info(ctx, "logged out", "username", s.Identity.Username)
		s.Close()
		m.info(s, "Logged out.")
		return Start{}, nil
	}
	return st, nil
}

// showAll fetches the owner's entries into a list screen, or the empty-vault
// sentinel.
func (m *Machine) showAll(ctx context.Context, s *Session) (State, error) {
	list, err := m.store.List(ctx, s.Identity.UserID)
	if err != nil {
		return nil, storeError("list entries", err)
	}
	return ShowAllVaults{List: newListView(list, true, models.EmptyVaultText)}, nil
}
