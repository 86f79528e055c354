// Package models defines the client-side data the CLI works with.
package models

// Session is who the app considers signed in. The zero value is the
// unauthenticated session.
type Session struct {
	UserID          string
	Email           string
	DisplayName     string
	IsAuthenticated bool
}

// Credentials is what a successful sign-in or token refresh yields.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	DisplayName  string
}

// Session returns the authenticated session the credentials describe.
func (c *Credentials) Session() Session {
	return Session{
		UserID:          c.UserID,
		Email:           c.Email,
		DisplayName:     c.DisplayName,
		IsAuthenticated: c.UserID != "",
	}
}

// Registration is the sign-up form.
type Registration struct {
	Email    string
	Password string
	Name     string
	Degree   string
	GradYear int
}
