package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/users"
	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/google/uuid"
)

// keySaltSize is the length of the per-user salt for entry key derivation.
const keySaltSize = 32

// Identity is the authenticated operator. Key encrypts entry secrets with
// Suite and must be wiped when the session ends.
type Identity struct {
	UserID   string
	Username string
	Key      []byte
	Suite    cryptox.Suite
}

// Wipe zeroes the entry key.
func (i *Identity) Wipe() {
	if i == nil {
		return
	}
	common.WipeByteArray(i.Key)
	i.Key = nil
}

// AuthService verifies and registers operators.
//
//   - UsernameTaken reports whether a username is already registered.
//   - Register fails with common.ErrAlreadyExists on conflict.
//   - Login fails with common.ErrInvalidCredentials for an unknown user or a
//     wrong password; any other error is a store failure.
//   - LastUsername returns the username of the last successful login, or "".
type AuthService interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*Identity, error)
	LastUsername(ctx context.Context) (string, error)
}

type authService struct {
	db      *sql.DB
	dialect dbx.Dialect
	suite   cryptox.Suite
	params  cryptox.HashParams
	logger  logging.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AuthOption customizes an AuthService.
type AuthOption func(*authService)

// WithHashParams overrides the argon2id cost of stored password hashes.
func WithHashParams(p cryptox.HashParams) AuthOption {
	return func(a *authService) { a.params = p }
}

// NewAuthService constructs an AuthService over db. New users get suite.
func NewAuthService(db *sql.DB, dialect dbx.Dialect, suite cryptox.Suite, logger logging.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		db:      db,
		dialect: dialect,
		suite:   suite,
		params:  cryptox.DefaultHashParams,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// decoy returns a hash of a random password with the service's cost, used
// to spend the same argon2 work on unknown usernames as on real ones.
func (a *authService) decoy() string {
	a.decoyOnce.Do(func() {
		h, err := cryptox.HashPassword(common.GenerateRandByteArray(16), a.params)
		if err == nil {
			a.decoyHash = h
		}
	})
	return a.decoyHash
}

func (a *authService) usersRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, a.dialect)
}

func (a *authService) metadataRepo() metadata.Repository {
	return metadata.NewSQLRepository(a.db, a.dialect)
}

func (a *authService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return a.usersRepo(a.db).ExistsByUsername(ctx, username)
}

// Register hashes the password, draws a fresh key salt and inserts the user
// in a single transaction after checking the username is free.
func (a *authService) Register(ctx context.Context, username, password string) error {
	hash, err := cryptox.HashPassword([]byte(password), a.params)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		KeySalt:      common.GenerateRandByteArray(keySaltSize),
		Cipher:       string(a.suite),
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.usersRepo(tx)
		exists, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrAlreadyExists
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "user registered", "username", username, "cipher", u.Cipher)
	return nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*Identity, error) {
	u, err := a.usersRepo(a.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword(a.decoy(), []byte(password))
			a.logger.Warn(ctx, "login failed", "username", username, "reason", "unknown user")
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := cryptox.VerifyPassword(u.PasswordHash, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("verify password of %s: %w", username, err)
	}
	if !ok {
		a.logger.Warn(ctx, "login failed", "username", username, "reason", "bad password")
		return nil, common.ErrInvalidCredentials
	}

	suite, err := cryptox.ParseSuite(u.Cipher)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username, err)
	}

	masterKey := cryptox.DeriveMasterKey([]byte(password), u.KeySalt)
	defer common.WipeByteArray(masterKey)

	key, err := cryptox.DeriveEntryKey(masterKey)
	if err != nil {
		return nil, err
	}

	if err := a.metadataRepo().Set(ctx, metadata.KeyLastUsername, username); err != nil {
		common.WipeByteArray(key)
		return nil, err
	}

	a.logger.Info(ctx, "user logged in", "username", username)
	return &Identity{UserID: u.ID, Username: u.Username, Key: key, Suite: suite}, nil
}

func (a *authService) LastUsername(ctx context.Context) (string, error) {
	return a.metadataRepo().Get(ctx, metadata.KeyLastUsername)
}
