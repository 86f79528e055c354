package client

import (
	"context"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
)

// Client is the CLI's view of the gophstore server.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, r models.Registration) (string, error)
	// Login and Refresh install the returned tokens on the client.
	Login(ctx context.Context, email, password string) (*models.Credentials, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Credentials, error)
	// Logout revokes the current refresh token and forgets both tokens.
	Logout(ctx context.Context) error
	// OnTokensRefreshed registers fn to be called after a transparent
	// refresh triggered by an expired access token.
	OnTokensRefreshed(fn func(*models.Credentials))

	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error

	CreateProduct(ctx context.Context, p models.NewProduct) (string, error)
	MarkSold(ctx context.Context, id string) error
	RequestImageUpload(ctx context.Context) (key, url string, err error)
	GetImageURL(ctx context.Context, key string) (string, error)
	WatchProducts(ctx context.Context) (ProductStream, error)
}

// ProductStream yields complete product snapshots until the server closes
// the stream or the context is cancelled.
type ProductStream interface {
	Recv() ([]models.Product, error)
}
