package products

import (
	"context"

	"github.com/dmitrijs2005/gophstore/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Product, error)
	MarkSold(ctx context.Context, ownerID, id string) error
}
