package entries

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/dbx"
)

// SQLRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository returns a repository that rebinds placeholders for dialect.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// NewSQLiteRepository returns a new SQLRepository bound to a SQLite DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return NewSQLRepository(db, dbx.DialectSQLite)
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

func (r *SQLRepository) Insert(ctx context.Context, e *models.VaultEntry) error {
	query := `INSERT INTO passwords (id, user_id, account, username, secret) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.q(query), e.ID, e.OwnerID, e.Account, e.Username, e.Secret)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (r *SQLRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.VaultEntry, error) {
	query := `SELECT id, user_id, account, username, secret FROM passwords WHERE user_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, r.q(query), ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.VaultEntry
	for rows.Next() {
		var item models.VaultEntry
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Account, &item.Username, &item.Secret); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) UpdateByTuple(ctx context.Context, ownerID, oldAccount, oldUsername, account, username string, secret []byte) (int64, error) {
	query := `UPDATE passwords SET account = ?, username = ?, secret = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND account = ? AND username = ?`
	res, err := r.db.ExecContext(ctx, r.q(query), account, username, secret, ownerID, oldAccount, oldUsername)
	if err != nil {
		return 0, fmt.Errorf("failed to update entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLRepository) DeleteByTuple(ctx context.Context, ownerID, account, username string) (int64, error) {
	query := `DELETE FROM passwords WHERE user_id = ? AND account = ? AND username = ?`
	res, err := r.db.ExecContext(ctx, r.q(query), ownerID, account, username)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}
