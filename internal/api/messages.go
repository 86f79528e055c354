// Package api is the wire contract between the gophstore server and its
// clients: request/response messages, the JSON codec they travel with and
// the gRPC service descriptor.
package api

import "time"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	GradYear int32  `json:"grad_year"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by Login and RefreshToken.
type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct{}

type GetProfileRequest struct{}

type Profile struct {
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	GradYear int32  `json:"grad_year"`
	Email    string `json:"email"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	GradYear int32  `json:"grad_year"`
}

type UpdateProfileResponse struct{}

type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"image_ref"`
}

type CreateProductResponse struct {
	ID string `json:"id"`
}

type MarkSoldRequest struct {
	ID string `json:"id"`
}

type MarkSoldResponse struct{}

type RequestImageUploadRequest struct{}

type RequestImageUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type GetImageURLRequest struct {
	Key string `json:"key"`
}

type GetImageURLResponse struct {
	URL string `json:"url"`
}

type WatchProductsRequest struct{}

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Sold      bool      `json:"sold"`
	ImageRef  string    `json:"image_ref"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductSnapshot carries the complete result set of a live product query
// at one point in time.
type ProductSnapshot struct {
	Products []*Product `json:"products"`
}
