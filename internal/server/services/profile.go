package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/repomanager"
)

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// Get returns the caller's profile; a missing document is
// common.ErrorNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, userID)
}

// Update applies a partial edit. Blank fields and a zero year are left
// unchanged; a non-zero year must be a plausible graduation year.
func (s *ProfileService) Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.Profile, error) {
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Degree = strings.TrimSpace(upd.Degree)
	if upd.GradYear != 0 {
		if err := validateGradYear(upd.GradYear); err != nil {
			return nil, err
		}
	}
	return s.repomanager.Profiles(s.db).Update(ctx, userID, upd)
}
