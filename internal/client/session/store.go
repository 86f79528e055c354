// Package session owns the CLI's notion of who is signed in. It persists
// the refresh token in the local metadata store so a restart can resume
// the session, and broadcasts every change to interested components.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophstore/internal/client/client"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/notify"
	"github.com/dmitrijs2005/gophstore/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophstore/internal/logging"
)

const (
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyEmail        = "email"
	keyDisplayName  = "display_name"
)

// Auth is the part of client.Client the store drives.
type Auth interface {
	Register(ctx context.Context, r models.Registration) (string, error)
	Login(ctx context.Context, email, password string) (*models.Credentials, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Credentials, error)
	Logout(ctx context.Context) error
	OnTokensRefreshed(fn func(*models.Credentials))
}

type Store struct {
	auth    Auth
	meta    metadata.Repository
	log     logging.Logger
	changes *notify.Broadcaster[models.Session]
}

func NewStore(auth Auth, meta metadata.Repository, log logging.Logger) *Store {
	s := &Store{
		auth:    auth,
		meta:    meta,
		log:     log,
		changes: notify.NewBroadcaster[models.Session](),
	}
	auth.OnTokensRefreshed(func(c *models.Credentials) {
		if err := s.persist(context.Background(), c); err != nil {
			s.log.Error(context.Background(), "persist refreshed tokens", "error", err)
		}
	})
	return s
}

// Current returns the session as of now; before Restore it is the zero
// (unauthenticated) session.
func (s *Store) Current() models.Session {
	v, _ := s.changes.Latest()
	return v
}

// Resolved reports whether Restore has settled the initial state.
func (s *Store) Resolved() bool {
	_, ok := s.changes.Latest()
	return ok
}

// Subscribe streams the session: the current value once resolved, then
// every change. Values a slow reader missed are collapsed into the latest.
func (s *Store) Subscribe(ctx context.Context) <-chan models.Session {
	return s.changes.Subscribe(ctx)
}

// Restore resumes the persisted session, if any. It always resolves the
// state. The stored token is kept when the server is unreachable and
// discarded when the server rejects it.
func (s *Store) Restore(ctx context.Context) models.Session {
	token, ok, err := s.meta.Get(ctx, keyRefreshToken)
	if err != nil {
		s.log.Error(ctx, "read stored session", "error", err)
	}
	if err != nil || !ok || token == "" {
		return s.set(models.Session{})
	}

	creds, err := s.auth.Refresh(ctx, token)
	switch {
	case err == nil:
		if perr := s.persist(ctx, creds); perr != nil {
			s.log.Error(ctx, "persist session", "error", perr)
		}
		return s.set(creds.Session())
	case errors.Is(err, client.ErrUnavailable):
		s.log.Warn(ctx, "server unavailable, session not restored")
	default:
		s.log.Info(ctx, "stored session rejected", "error", err)
		if cerr := s.meta.Clear(ctx); cerr != nil {
			s.log.Error(ctx, "clear stored session", "error", cerr)
		}
	}
	return s.set(models.Session{})
}

func (s *Store) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return s.Current(), err
	}
	if err := s.persist(ctx, creds); err != nil {
		s.log.Error(ctx, "persist session", "error", err)
	}
	return s.set(creds.Session()), nil
}

// SignOut revokes the server session, wipes local metadata and publishes
// the unauthenticated session. Local state is cleared even if the server
// call fails.
func (s *Store) SignOut(ctx context.Context) error {
	lerr := s.auth.Logout(ctx)
	if lerr != nil {
		s.log.Warn(ctx, "server logout failed", "error", lerr)
	}
	cerr := s.meta.Clear(ctx)
	s.set(models.Session{})
	return cerr
}

// Register creates the account and its profile, then signs out: a new
// account has to log in explicitly.
func (s *Store) Register(ctx context.Context, r models.Registration) (string, error) {
	id, err := s.auth.Register(ctx, r)
	if err != nil {
		return "", err
	}
	if err := s.SignOut(ctx); err != nil {
		s.log.Error(ctx, "sign out after registration", "error", err)
	}
	return id, nil
}

func (s *Store) set(v models.Session) models.Session {
	s.changes.Publish(v)
	return v
}

func (s *Store) persist(ctx context.Context, c *models.Credentials) error {
	return s.meta.SetAll(ctx, map[string]string{
		keyRefreshToken: c.RefreshToken,
		keyUserID:       c.UserID,
		keyEmail:        c.Email,
		keyDisplayName:  c.DisplayName,
	})
}
