// Package entries persists vault entries.
//
// Entries are scoped by owner. Rows carry an opaque id, but the session
// addresses them by their (account, username) tuple, which is not unique:
// UpdateByTuple and DeleteByTuple act on every matching row of the owner and
// report how many were affected.
//
// SQLRepository works on either dialect supported by dbx and on either a
// *sql.DB or a *sql.Tx.
//
//	repo := entries.NewSQLiteRepository(db)
//	_ = repo.Insert(ctx, e)
//	list, _ := repo.ListByOwner(ctx, ownerID)
//	n, _ := repo.DeleteByTuple(ctx, ownerID, "github", "alice")
package entries
