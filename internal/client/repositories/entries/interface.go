package entries

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/client/models"
)

// Repository describes storage operations on VaultEntry rows.
type Repository interface {
	// Insert stores e. e.ID must be set by the caller.
	Insert(ctx context.Context, e *models.VaultEntry) error

	// ListByOwner returns the owner's entries in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.VaultEntry, error)

	// UpdateByTuple rewrites every row of the owner matching
	// (oldAccount, oldUsername) and returns the number of rows changed.
	UpdateByTuple(ctx context.Context, ownerID, oldAccount, oldUsername, account, username string, secret []byte) (int64, error)

	// DeleteByTuple removes every row of the owner matching (account, username).
	DeleteByTuple(ctx context.Context, ownerID, account, username string) (int64, error)
}
