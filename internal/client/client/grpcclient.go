package client

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophstore/internal/api"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	api         api.StorefrontServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onRefresh    func(*models.Credentials)

	// serializes transparent refreshes so a rotated token is used once
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(api.CodecName)),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = api.NewStorefrontServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

func (c *GRPCClient) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken, c.refreshToken = access, refresh
	c.mu.Unlock()
}

func (c *GRPCClient) OnTokensRefreshed(fn func(*models.Credentials)) {
	c.mu.Lock()
	c.onRefresh = fn
	c.mu.Unlock()
}

// refreshAfterExpiry refreshes the token pair unless another call already
// replaced the access token that was rejected.
func (c *GRPCClient) refreshAfterExpiry(ctx context.Context, rejected string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.tokens()
	if access != rejected {
		return nil
	}
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := c.api.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)

	c.mu.RLock()
	fn := c.onRefresh
	c.mu.RUnlock()
	if fn != nil {
		fn(credentialsFromAPI(resp))
	}
	return nil
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if api.PublicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, _ := c.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	if rerr := c.refreshAfterExpiry(ctx, access); rerr != nil {
		return err
	}

	access, _ = c.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func credentialsFromAPI(r *api.SessionResponse) *models.Credentials {
	return &models.Credentials{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		UserID:       r.UserID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
	}
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.api.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, r models.Registration) (string, error) {
	resp, err := c.api.Register(ctx, &api.RegisterRequest{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Degree:   r.Degree,
		GradYear: int32(r.GradYear),
	})
	if err != nil {
		return "", mapError(err)
	}
	return resp.UserID, nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*models.Credentials, error) {
	resp, err := c.api.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return credentialsFromAPI(resp), nil
}

func (c *GRPCClient) Refresh(ctx context.Context, refreshToken string) (*models.Credentials, error) {
	resp, err := c.api.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, mapError(err)
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return credentialsFromAPI(resp), nil
}

func (c *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := c.tokens()
	c.setTokens("", "")
	if refresh == "" {
		return nil
	}
	if _, err := c.api.Logout(ctx, &api.LogoutRequest{RefreshToken: refresh}); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := c.api.GetProfile(ctx, &api.GetProfileRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &models.Profile{
		Name:     resp.Name,
		Degree:   resp.Degree,
		GradYear: int(resp.GradYear),
		Email:    resp.Email,
	}, nil
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	_, err := c.api.UpdateProfile(ctx, &api.UpdateProfileRequest{
		Name:     p.Name,
		Degree:   p.Degree,
		GradYear: int32(p.GradYear),
	})
	return mapError(err)
}

func (c *GRPCClient) CreateProduct(ctx context.Context, p models.NewProduct) (string, error) {
	resp, err := c.api.CreateProduct(ctx, &api.CreateProductRequest{Name: p.Name, Price: p.Price, ImageRef: p.ImageRef})
	if err != nil {
		return "", mapError(err)
	}
	return resp.ID, nil
}

func (c *GRPCClient) MarkSold(ctx context.Context, id string) error {
	_, err := c.api.MarkSold(ctx, &api.MarkSoldRequest{ID: id})
	return mapError(err)
}

func (c *GRPCClient) RequestImageUpload(ctx context.Context) (string, string, error) {
	resp, err := c.api.RequestImageUpload(ctx, &api.RequestImageUploadRequest{})
	if err != nil {
		return "", "", mapError(err)
	}
	return resp.Key, resp.URL, nil
}

func (c *GRPCClient) GetImageURL(ctx context.Context, key string) (string, error) {
	resp, err := c.api.GetImageURL(ctx, &api.GetImageURLRequest{Key: key})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}

type productStream struct {
	stream api.StorefrontService_WatchProductsClient
	first  *api.ProductSnapshot
}

func (s *productStream) Recv() ([]models.Product, error) {
	snap := s.first
	s.first = nil
	if snap == nil {
		var err error
		if snap, err = s.stream.Recv(); err != nil {
			return nil, mapError(err)
		}
	}
	out := make([]models.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		out = append(out, models.Product{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Sold:      p.Sold,
			ImageRef:  p.ImageRef,
			OwnerID:   p.OwnerID,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// WatchProducts opens the live product feed. Stream errors only surface on
// the first receive, so that is where an expired access token is detected
// and the stream reopened once with a refreshed one.
func (c *GRPCClient) WatchProducts(ctx context.Context) (ProductStream, error) {
	open := func() (api.StorefrontService_WatchProductsClient, *api.ProductSnapshot, string, error) {
		access, _ := c.tokens()
		stream, err := c.api.WatchProducts(withAccessToken(ctx, access), &api.WatchProductsRequest{})
		if err != nil {
			return nil, nil, access, err
		}
		first, err := stream.Recv()
		return stream, first, access, err
	}

	stream, first, used, err := open()
	if err != nil && isTokenExpired(err) {
		if rerr := c.refreshAfterExpiry(ctx, used); rerr != nil {
			if errors.Is(mapError(rerr), ErrUnavailable) {
				return nil, ErrUnavailable
			}
			return nil, mapError(err)
		}
		stream, first, _, err = open()
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &productStream{stream: stream, first: first}, nil
}
