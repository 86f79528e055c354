package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/repomanager"
)

// ChangeNotifier is told whenever an owner's products change and hands out
// subscriptions to those changes.
type ChangeNotifier interface {
	Publish(ownerID string)
	Subscribe(ownerID string) (<-chan struct{}, func())
}

type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    ChangeNotifier
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager, n ChangeNotifier) *ProductService {
	return &ProductService{db: db, repomanager: m, notifier: n}
}

// Create stores a new product owned by ownerID. Sold is always false and
// the creation time comes from the database.
func (s *ProductService) Create(ctx context.Context, ownerID, name string, price float64, imageRef string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	p, err := s.repomanager.Products(s.db).Create(ctx, &models.Product{
		OwnerID:  ownerID,
		Name:     name,
		Price:    price,
		ImageRef: strings.TrimSpace(imageRef),
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ownerID)
	return p, nil
}

func (s *ProductService) MarkSold(ctx context.Context, ownerID, id string) error {
	if err := s.repomanager.Products(s.db).MarkSold(ctx, ownerID, id); err != nil {
		return err
	}
	s.notifier.Publish(ownerID)
	return nil
}

// List returns ownerID's products, newest first.
func (s *ProductService) List(ctx context.Context, ownerID string) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).ListByOwner(ctx, ownerID)
}

// Watch calls send with the full snapshot of ownerID's products, and again
// after every change, until ctx is done or send fails. Changes arriving
// while a snapshot is being read or sent collapse into one more snapshot.
func (s *ProductService) Watch(ctx context.Context, ownerID string, send func([]*models.Product) error) error {
	changes, cancel := s.notifier.Subscribe(ownerID)
	defer cancel()

	for {
		list, err := s.List(ctx, ownerID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := send(list); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-changes:
		}
	}
}
