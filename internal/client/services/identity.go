// Package services contains the application services of the Daily Epiphany
// client: identity/session handling, per-identity settings and history, and
// the generation orchestrator.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/repositories/blobs"
	"github.com/dailyepiphany/epiphany/internal/common"
	"github.com/dailyepiphany/epiphany/internal/dbx"
	"github.com/dailyepiphany/epiphany/internal/logging"
)

// Collection names a persisted per-identity collection kind.
type Collection string

const (
	CollectionHistory  Collection = "history"
	CollectionSettings Collection = "settings"
)

// sessionNamespace holds the active signed-in user; absent means guest.
const sessionNamespace = "session"

// Namespace resolves the storage namespace for an identity's collection.
// The guest and every distinct user id map to disjoint namespaces, so
// switching identity can never read another identity's data. A nil user is
// the guest identity.
func Namespace(user *models.User, c Collection) string {
	if user == nil {
		return "guest/" + string(c)
	}
	return "user/" + user.ID + "/" + string(c)
}

// IdentityService owns the persisted session record and the login/logout
// lifecycle. All methods treat a nil *models.User as the guest identity.
//
// Contract:
//   - RestoreSession: read the persisted session; corrupt data degrades to
//     guest and is never surfaced as an error.
//   - Login: persist the session; an incoming user without settings adopts
//     the caller's currently active settings (continuity over defaults).
//   - SaveSession: persist an updated user record (streak/badge changes).
//   - Logout: clear the session record.
//   - DeleteAccount: remove the user's history collection, settings and
//     session in one transaction.
type IdentityService interface {
	RestoreSession(ctx context.Context) *models.User
	Login(ctx context.Context, user *models.User, activeSettings models.Settings) (*models.User, error)
	SaveSession(ctx context.Context, user *models.User) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context, user *models.User) error
}

type identityService struct {
	db  *sql.DB
	log logging.Logger
}

// NewIdentityService constructs an IdentityService over the local database.
func NewIdentityService(db *sql.DB, log logging.Logger) IdentityService {
	return &identityService{db: db, log: log}
}

func (s *identityService) getBlobsRepo() blobs.Repository {
	return blobs.NewSQLiteRepository(s.db)
}

func (s *identityService) RestoreSession(ctx context.Context) *models.User {
	payload, err := s.getBlobsRepo().Get(ctx, sessionNamespace)
	if err != nil {
		s.log.Warn(ctx, "failed to read session, starting as guest", "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		s.log.Warn(ctx, "failed to restore session, starting as guest", "error", err)
		return nil
	}
	return &user
}

func (s *identityService) Login(ctx context.Context, user *models.User, activeSettings models.Settings) (*models.User, error) {
	user = user.Clone()

	if user.Settings == nil {
		// First login on this profile: carry the pre-login settings over
		// instead of resetting the experience to defaults.
		saved, err := s.getBlobsRepo().Get(ctx, Namespace(user, CollectionSettings))
		if err == nil && saved != nil {
			var st models.Settings
			if jsonErr := json.Unmarshal(saved, &st); jsonErr == nil {
				withDefaults := st.WithDefaults()
				user.Settings = &withDefaults
			}
		}
		if user.Settings == nil {
			user.Settings = &activeSettings
		}
	}

	if err := s.SaveSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *identityService) SaveSession(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("save session: %w", common.ErrNotSignedIn)
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.getBlobsRepo().Put(ctx, sessionNamespace, payload)
}

func (s *identityService) Logout(ctx context.Context) error {
	return s.getBlobsRepo().Delete(ctx, sessionNamespace)
}

func (s *identityService) DeleteAccount(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("delete account: %w", common.ErrNotSignedIn)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := blobs.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, Namespace(user, CollectionHistory)); err != nil {
			return err
		}
		if err := repo.Delete(ctx, Namespace(user, CollectionSettings)); err != nil {
			return err
		}
		return repo.Delete(ctx, sessionNamespace)
	})
}
