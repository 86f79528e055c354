// Package profile loads and edits the signed-in user's profile.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/logging"
)

type Client interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
}

// Result is the outcome of one load. Exactly one of Profile and Err is set.
type Result struct {
	Profile *models.Profile
	// Synthesized is true when no profile document exists and Profile was
	// built from the session.
	Synthesized bool
	Err         error
}

func (r Result) OK() bool { return r.Err == nil }

type Loader struct {
	client Client
	log    logging.Logger
}

func NewLoader(c Client, log logging.Logger) *Loader {
	return &Loader{client: c, log: log}
}

// Load fetches the profile for s. A missing document yields a profile
// named after the display name (or email) instead of an error.
func (l *Loader) Load(ctx context.Context, s models.Session) Result {
	p, err := l.client.GetProfile(ctx)
	switch {
	case err == nil:
		if p.Email == "" {
			p.Email = s.Email
		}
		return Result{Profile: p}
	case errors.Is(err, common.ErrorNotFound):
		name := s.DisplayName
		if name == "" {
			name = s.Email
		}
		return Result{Profile: &models.Profile{Name: name, Email: s.Email}, Synthesized: true}
	default:
		l.log.Error(ctx, "load profile", "user_id", s.UserID, "error", err)
		return Result{Err: err}
	}
}

// Save validates and stores an edited profile. Empty name or degree keep
// their current values; gradYear 0 keeps the current year.
func (l *Loader) Save(ctx context.Context, name, degree string, gradYear int) error {
	p := models.Profile{
		Name:     strings.TrimSpace(name),
		Degree:   strings.TrimSpace(degree),
		GradYear: gradYear,
	}
	if p.GradYear != 0 && (p.GradYear < 1950 || p.GradYear > 2100) {
		return fmt.Errorf("%w: graduation year must be between 1950 and 2100", common.ErrorValidation)
	}
	if p == (models.Profile{}) {
		return fmt.Errorf("%w: nothing to update", common.ErrorValidation)
	}
	return l.client.UpdateProfile(ctx, p)
}
