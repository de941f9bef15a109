package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/entries"
	"github.com/google/uuid"
)

// EntryService is the entry store as seen by the session. Lists come back
// in display order (models.SortEntries). Entries are addressed by their
// (account, username) tuple; Update and Delete act on every matching row.
type EntryService interface {
	List(ctx context.Context, ownerID string) ([]models.VaultEntry, error)
	Search(ctx context.Context, ownerID, query string) ([]models.VaultEntry, error)
	Create(ctx context.Context, e *models.VaultEntry) error
	Update(ctx context.Context, ownerID, oldAccount, oldUsername string, e models.VaultEntry) (int64, error)
	Delete(ctx context.Context, ownerID, account, username string) (int64, error)
}

type entryService struct {
	entryRepo entries.Repository
}

func NewEntryService(entryRepo entries.Repository) EntryService {
	return &entryService{entryRepo: entryRepo}
}

func (s *entryService) List(ctx context.Context, ownerID string) ([]models.VaultEntry, error) {
	list, err := s.entryRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	models.SortEntries(list)
	return list, nil
}

// Search returns the entries whose account contains query, ignoring case.
func (s *entryService) Search(ctx context.Context, ownerID, query string) ([]models.VaultEntry, error) {
	list, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return models.FilterByAccount(list, query), nil
}

// Create assigns an id when e has none and stores the entry.
func (s *entryService) Create(ctx context.Context, e *models.VaultEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := s.entryRepo.Insert(ctx, e); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

func (s *entryService) Update(ctx context.Context, ownerID, oldAccount, oldUsername string, e models.VaultEntry) (int64, error) {
	n, err := s.entryRepo.UpdateByTuple(ctx, ownerID, oldAccount, oldUsername, e.Account, e.Username, e.Secret)
	if err != nil {
		return 0, fmt.Errorf("update entry: %w", err)
	}
	return n, nil
}

func (s *entryService) Delete(ctx context.Context, ownerID, account, username string) (int64, error) {
	n, err := s.entryRepo.DeleteByTuple(ctx, ownerID, account, username)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return n, nil
}
