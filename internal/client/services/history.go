package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/repositories/blobs"
	"github.com/dailyepiphany/epiphany/internal/logging"
)

// HistoryService manages the per-identity collection of generated records.
// The collection is ordered newest-first and every mutation persists the
// entire collection, so rapid sequential calls cannot resurrect stale copies.
type HistoryService interface {
	// Load returns the identity's collection, empty when nothing is stored
	// or the stored payload cannot be parsed.
	Load(ctx context.Context, user *models.User) []models.Epiphany

	// Append prepends the record and persists the resulting collection,
	// returning it for caller state updates.
	Append(ctx context.Context, user *models.User, record models.Epiphany) ([]models.Epiphany, error)

	// ToggleFavorite flips IsFavorite on the record matching id; a missing
	// id is a no-op. The returned collection is authoritative.
	ToggleFavorite(ctx context.Context, user *models.User, id string) ([]models.Epiphany, error)

	// Export serializes the full collection verbatim as an indented JSON
	// document suitable for download.
	Export(ctx context.Context, user *models.User) ([]byte, error)
}

type historyService struct {
	db  *sql.DB
	log logging.Logger
}

// NewHistoryService constructs a HistoryService over the local database.
func NewHistoryService(db *sql.DB, log logging.Logger) HistoryService {
	return &historyService{db: db, log: log}
}

func (s *historyService) getBlobsRepo() blobs.Repository {
	return blobs.NewSQLiteRepository(s.db)
}

func (s *historyService) Load(ctx context.Context, user *models.User) []models.Epiphany {
	payload, err := s.getBlobsRepo().Get(ctx, Namespace(user, CollectionHistory))
	if err != nil {
		s.log.Warn(ctx, "failed to read history, starting empty", "error", err)
		return []models.Epiphany{}
	}
	if payload == nil {
		return []models.Epiphany{}
	}

	var records []models.Epiphany
	if err := json.Unmarshal(payload, &records); err != nil {
		s.log.Debug(ctx, "malformed history payload, starting empty", "error", err)
		return []models.Epiphany{}
	}
	return records
}

func (s *historyService) persist(ctx context.Context, user *models.User, records []models.Epiphany) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	return s.getBlobsRepo().Put(ctx, Namespace(user, CollectionHistory), payload)
}

func (s *historyService) Append(ctx context.Context, user *models.User, record models.Epiphany) ([]models.Epiphany, error) {
	records := append([]models.Epiphany{record}, s.Load(ctx, user)...)
	if err := s.persist(ctx, user, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *historyService) ToggleFavorite(ctx context.Context, user *models.User, id string) ([]models.Epiphany, error) {
	records := s.Load(ctx, user)
	for i := range records {
		if records[i].ID == id {
			records[i].IsFavorite = !records[i].IsFavorite
			break
		}
	}
	if err := s.persist(ctx, user, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *historyService) Export(ctx context.Context, user *models.User) ([]byte, error) {
	records := s.Load(ctx, user)
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history export: %w", err)
	}
	return payload, nil
}
