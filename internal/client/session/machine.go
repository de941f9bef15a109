package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/client/clipboard"
	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/client/services"
	"github.com/dmitrijs2005/passvault/internal/logging"
)

// Store is the entry persistence the session needs.
type Store interface {
	List(ctx context.Context, ownerID string) ([]models.VaultEntry, error)
	Search(ctx context.Context, ownerID, query string) ([]models.VaultEntry, error)
	Create(ctx context.Context, e *models.VaultEntry) error
	Update(ctx context.Context, ownerID, oldAccount, oldUsername string, e models.VaultEntry) (int64, error)
	Delete(ctx context.Context, ownerID, account, username string) (int64, error)
}

// Authenticator verifies and registers operators.
type Authenticator interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*services.Identity, error)
	LastUsername(ctx context.Context) (string, error)
}

// Generator produces strong passwords.
type Generator interface {
	Generate() (string, error)
}

// StoreError is a persistence failure. The session cannot continue after it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// Machine computes session transitions.
type Machine struct {
	store     Store
	auth      Authenticator
	clipboard clipboard.Writer
	generator Generator
	logger    logging.Logger

	now       func() time.Time
	noticeTTL time.Duration
	errorTTL  time.Duration
}

// Option customizes a Machine.
type Option func(*Machine)

// WithClock replaces time.Now, which stamps notices.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithNoticeTTL sets how long confirmations stay visible.
func WithNoticeTTL(d time.Duration) Option {
	return func(m *Machine) { m.noticeTTL = d }
}

// WithErrorTTL sets how long error notices stay visible.
func WithErrorTTL(d time.Duration) Option {
	return func(m *Machine) { m.errorTTL = d }
}

func NewMachine(store Store, auth Authenticator, clip clipboard.Writer, gen Generator, logger logging.Logger, opts ...Option) *Machine {
	m := &Machine{
		store:     store,
		auth:      auth,
		clipboard: clip,
		generator: gen,
		logger:    logger,
		now:       time.Now,
		noticeTTL: 2 * time.Second,
		errorTTL:  3 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle applies ev to s. The only error returned is *StoreError.
func (m *Machine) Handle(ctx context.Context, s *Session, ev Event) error {
	if ev.Kind == EventResize {
		s.ViewportHeight = max(ev.Height, 1)
		s.State = refit(s.State, s.ViewportHeight)
		return nil
	}

	if s.Notice != nil && !s.Notice.Active(m.now()) {
		s.Notice = nil
	}

	var (
		next State
		err  error
	)
	switch st := s.State.(type) {
	case Start:
		next, err = m.handleStart(ctx, s, st, ev)
	case Login:
		next, err = m.handleLogin(ctx, s, st, ev)
	case Register:
		next, err = m.handleRegister(ctx, s, st, ev)
	case Menu:
		next, err = m.handleMenu(ctx, s, st, ev)
	case CreateAccount:
		next, err = m.handleCreate(ctx, s, st, ev)
	case ShowAllVaults:
		next, err = m.handleList(ctx, s, st, ev)
	case ViewVaultDetail:
		next, err = m.handleDetail(ctx, s, st, ev)
	case EditVault:
		next, err = m.handleEdit(ctx, s, st, ev)
	case SearchVault:
		next, err = m.handleSearch(ctx, s, st, ev)
	default:
		next = Start{}
	}
	if err != nil {
		m.logger.Error(ctx, "session aborted", "event", ev.Kind.String(), "error", err)
		return err
	}

	s.State = next
	return nil
}

// refit keeps the selected row visible at height in the list on screen and
// in the list snapshots that Esc returns to.
func refit(st State, height int) State {
	switch st := st.(type) {
	case ShowAllVaults:
		st.List.ensureVisible(height)
		return st
	case ViewVaultDetail:
		st.Back.List.ensureVisible(height)
		return st
	case EditVault:
		st.Original.Back.List.ensureVisible(height)
		return st
	}
	return st
}

func (m *Machine) info(s *Session, text string) {
	s.Notice = &Notice{Text: text, Kind: NoticeInfo, At: m.now(), TTL: m.noticeTTL}
}

func (m *Machine) fail(s *Session, text string) {
	s.Notice = &Notice{Text: text, Kind: NoticeError, At: m.now(), TTL: m.errorTTL}
}

func (m *Machine) cipher(s *Session) services.VaultCipher {
	return services.VaultCipher{Suite: s.Identity.Suite}
}

// reveal decrypts e's secret, logging corruption without the secret itself.
func (m *Machine) reveal(ctx context.Context, s *Session, e models.VaultEntry) services.SecretResult {
	res := m.cipher(s).Reveal(e.Secret, s.Identity.Key)
	if !res.OK() {
		m.logger.Warn(ctx, "secret could not be decrypted", "entry", e.ID, "error", res.Err)
	}
	return res
}

// moveSelection moves a fixed-menu cursor by the Up/Down event.
func moveSelection(selected, count int, ev Event) int {
	switch ev.Kind {
	case EventUp:
		if selected > 0 {
			selected--
		}
	case EventDown:
		if selected < count-1 {
			selected++
		}
	}
	return selected
}
