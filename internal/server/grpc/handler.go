package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophstore/internal/api"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/dmitrijs2005/gophstore/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus turns a service error into a gRPC status. Unexpected errors are
// logged and hidden from the caller.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	}
	s.logger.Error(ctx, "request failed", "op", op, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	u, err := s.users.Register(ctx, services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Degree:   req.Degree,
		GradYear: int(req.GradYear),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &api.RegisterResponse{UserID: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.SessionResponse, error) {
	sess, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return sessionResponse(sess), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.SessionResponse, error) {
	sess, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return sessionResponse(sess), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *api.LogoutRequest) (*api.LogoutResponse, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &api.LogoutResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.GetProfileRequest) (*api.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "get profile", err)
	}
	return &api.Profile{Name: p.Name, Degree: p.Degree, GradYear: int32(p.GradYear), Email: p.Email}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.UpdateProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	_, err = s.profiles.Update(ctx, userID, models.ProfileUpdate{
		Name:     req.Name,
		Degree:   req.Degree,
		GradYear: int(req.GradYear),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "update profile", err)
	}
	return &api.UpdateProfileResponse{}, nil
}

func (s *GRPCServer) CreateProduct(ctx context.Context, req *api.CreateProductRequest) (*api.CreateProductResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.products.Create(ctx, userID, req.Name, req.Price, req.ImageRef)
	if err != nil {
		return nil, s.toStatus(ctx, "create product", err)
	}
	return &api.CreateProductResponse{ID: p.ID}, nil
}

func (s *GRPCServer) MarkSold(ctx context.Context, req *api.MarkSoldRequest) (*api.MarkSoldResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.products.MarkSold(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "mark sold", err)
	}
	return &api.MarkSoldResponse{}, nil
}

func (s *GRPCServer) RequestImageUpload(ctx context.Context, req *api.RequestImageUploadRequest) (*api.RequestImageUploadResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	key, url, err := s.images.RequestUpload(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "request image upload", err)
	}
	return &api.RequestImageUploadResponse{Key: key, URL: url}, nil
}

func (s *GRPCServer) GetImageURL(ctx context.Context, req *api.GetImageURLRequest) (*api.GetImageURLResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	url, err := s.images.GetURL(ctx, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, "get image url", err)
	}
	return &api.GetImageURLResponse{URL: url}, nil
}

// WatchProducts streams the caller's product snapshots until the client
// goes away.
func (s *GRPCServer) WatchProducts(req *api.WatchProductsRequest, stream api.StorefrontService_WatchProductsServer) error {
	ctx := stream.Context()
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	s.logger.Debug(ctx, "feed opened", "user_id", userID)
	defer s.logger.Debug(ctx, "feed closed", "user_id", userID)

	err = s.products.Watch(ctx, userID, func(list []*models.Product) error {
		return stream.Send(models.SnapshotToAPI(list))
	})
	if err != nil {
		return s.toStatus(ctx, "watch products", err)
	}
	return nil
}

func sessionResponse(s *services.Session) *api.SessionResponse {
	return &api.SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		UserID:       s.UserID,
		Email:        s.Email,
		DisplayName:  s.DisplayName,
	}
}
