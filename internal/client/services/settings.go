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

// SettingsService loads and saves the per-identity configuration record.
// Guest settings and each user's settings are independent records; a save
// always writes the full record.
type SettingsService interface {
	// Load returns the identity's saved settings, or defaults when nothing
	// usable is stored. Malformed payloads never produce an error.
	Load(ctx context.Context, user *models.User) models.Settings

	// Save persists the full settings record for the identity.
	Save(ctx context.Context, user *models.User, settings models.Settings) error
}

type settingsService struct {
	db  *sql.DB
	log logging.Logger
}

// NewSettingsService constructs a SettingsService over the local database.
func NewSettingsService(db *sql.DB, log logging.Logger) SettingsService {
	return &settingsService{db: db, log: log}
}

func (s *settingsService) getBlobsRepo() blobs.Repository {
	return blobs.NewSQLiteRepository(s.db)
}

func (s *settingsService) Load(ctx context.Context, user *models.User) models.Settings {
	payload, err := s.getBlobsRepo().Get(ctx, Namespace(user, CollectionSettings))
	if err != nil {
		s.log.Warn(ctx, "failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	if payload == nil {
		return models.DefaultSettings()
	}

	var st models.Settings
	if err := json.Unmarshal(payload, &st); err != nil {
		s.log.Debug(ctx, "malformed settings payload, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return st.WithDefaults()
}

func (s *settingsService) Save(ctx context.Context, user *models.User, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return s.getBlobsRepo().Put(ctx, Namespace(user, CollectionSettings), payload)
}
