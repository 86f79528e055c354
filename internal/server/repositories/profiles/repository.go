package profiles

import (
	"context"

	"github.com/dmitrijs2005/gophstore/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.Profile, error)
}
