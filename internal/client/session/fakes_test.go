package session

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/client/services"
	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("disk on fire")

// fakeStore keeps entries in memory with the same tuple semantics as the
// SQL repository.
type fakeStore struct {
	entries []models.VaultEntry
	nextID  int
	err     error
}

func (f *fakeStore) owned(ownerID string) []models.VaultEntry {
	var out []models.VaultEntry
	for _, e := range f.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeStore) List(_ context.Context, ownerID string) ([]models.VaultEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.owned(ownerID)
	models.SortEntries(out)
	return out, nil
}

func (f *fakeStore) Search(ctx context.Context, ownerID, query string) ([]models.VaultEntry, error) {
	list, err := f.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return models.FilterByAccount(list, query), nil
}

func (f *fakeStore) Create(_ context.Context, e *models.VaultEntry) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	if e.ID == "" {
		e.ID = string(rune('a' + f.nextID))
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeStore) Update(_ context.Context, ownerID, oldAccount, oldUsername string, e models.VaultEntry) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for i := range f.entries {
		cur := &f.entries[i]
		if cur.OwnerID == ownerID && cur.Account == oldAccount && cur.Username == oldUsername {
			cur.Account, cur.Username, cur.Secret = e.Account, e.Username, e.Secret
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Delete(_ context.Context, ownerID, account, username string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.OwnerID == ownerID && e.Account == account && e.Username == username {
			n++
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return n, nil
}

// fakeAuth accepts the passwords in users and hands out a fixed key.
type fakeAuth struct {
	users      map[string]string
	last       string
	registered []string
	err        error
	// registerErr is returned by Register only.
	registerErr error
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{users: map[string]string{}}
}

func (f *fakeAuth) UsernameTaken(_ context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeAuth) Register(_ context.Context, username, password string) error {
	if f.err != nil {
		return f.err
	}
	if f.registerErr != nil {
		return f.registerErr
	}
	if _, ok := f.users[username]; ok {
		return common.ErrAlreadyExists
	}
	f.users[username] = password
	f.registered = append(f.registered, username)
	return nil
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*services.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if pw, ok := f.users[username]; !ok || pw != password {
		return nil, common.ErrInvalidCredentials
	}
	f.last = username
	return testIdentity(username), nil
}

func (f *fakeAuth) LastUsername(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.last, nil
}

func testIdentity(username string) *services.Identity {
	return &services.Identity{
		UserID:   "id-" + username,
		Username: username,
		Key:      bytes.Repeat([]byte{0x42}, cryptox.KeySize),
		Suite:    cryptox.SuiteAES256GCM,
	}
}

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.writes = append(f.writes, text)
	return f.err
}

type fixedGenerator struct {
	value string
	err   error
}

func (g fixedGenerator) Generate() (string, error) {
	return g.value, g.err
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	m     *Machine
	s     *Session
	store *fakeStore
	auth  *fakeAuth
	clip  *fakeClipboard
	clock *fakeClock
}

const generated = "Ab3$k-9Qz!m-T#7pw-Lx"

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		s:     NewSession(5),
		store: &fakeStore{},
		auth:  newFakeAuth(),
		clip:  &fakeClipboard{},
		clock: &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	h.m = NewMachine(h.store, h.auth, h.clip, fixedGenerator{value: generated}, logging.Nop(),
		WithClock(h.clock.Now), WithNoticeTTL(2*time.Second), WithErrorTTL(3*time.Second))
	return h
}

// loggedIn puts the harness on the Menu screen as alice.
func (h *harness) loggedIn() *harness {
	h.auth.users["alice"] = "pw"
	h.s.Identity = testIdentity("alice")
	h.s.State = Menu{}
	return h
}

func (h *harness) press(t *testing.T, events ...Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, h.m.Handle(context.Background(), h.s, ev))
	}
}

func (h *harness) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		h.press(t, Insert(r))
	}
}

// seal encrypts secret with the test identity key.
func (h *harness) seal(t *testing.T, secret string) []byte {
	t.Helper()
	blob, err := services.VaultCipher{Suite: cryptox.SuiteAES256GCM}.Encrypt(secret, testIdentity("").Key)
	require.NoError(t, err)
	return blob
}

// add stores an entry owned by the logged-in operator.
func (h *harness) add(t *testing.T, account, username, secret string) {
	t.Helper()
	require.NoError(t, h.store.Create(context.Background(), &models.VaultEntry{
		OwnerID:  h.s.Identity.UserID,
		Account:  account,
		Username: username,
		Secret:   h.seal(t, secret),
	}))
}

func (h *harness) openShowAll(t *testing.T) ShowAllVaults {
	t.Helper()
	h.s.State = Menu{Selected: MenuShowAll}
	h.press(t, Key(EventEnter))
	st, ok := h.s.State.(ShowAllVaults)
	require.True(t, ok, "state is %T", h.s.State)
	return st
}

func stateAs[T State](t *testing.T, s *Session) T {
	t.Helper()
	st, ok := s.State.(T)
	require.True(t, ok, "state is %T", s.State)
	return st
}
