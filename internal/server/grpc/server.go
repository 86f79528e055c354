// Package grpc exposes the storefront services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophstore/internal/api"
	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/dmitrijs2005/gophstore/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.Session, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.Profile, error)
}

type ProductService interface {
	Create(ctx context.Context, ownerID, name string, price float64, imageRef string) (*models.Product, error)
	MarkSold(ctx context.Context, ownerID, id string) error
	Watch(ctx context.Context, ownerID string, send func([]*models.Product) error) error
}

type ImageService interface {
	RequestUpload(ctx context.Context) (key string, url string, err error)
	GetURL(ctx context.Context, key string) (string, error)
}

// Services groups the business services the gRPC layer delegates to.
type Services struct {
	Users    UserService
	Profiles ProfileService
	Products ProductService
	Images   ImageService
}

type GRPCServer struct {
	api.UnimplementedStorefrontServiceServer
	address   string
	users     UserService
	profiles  ProfileService
	products  ProductService
	images    ImageService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		profiles:  svc.Profiles,
		products:  svc.Products,
		images:    svc.Images,
		jwtSecret: []byte(secretKey),
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	api.RegisterStorefrontServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
