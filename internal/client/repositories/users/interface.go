// Package users persists operator accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/client/models"
)

// Repository stores User records. Users are never updated or deleted by
// the vault.
type Repository interface {
	// Create inserts u. A duplicate username yields common.ErrAlreadyExists.
	Create(ctx context.Context, u *models.User) error

	// GetByUsername returns common.ErrorNotFound when no user matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
