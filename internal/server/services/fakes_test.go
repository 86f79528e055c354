package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/dbx"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/products"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmail *models.User
	byID    *models.User
	getErr  error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.byEmail == nil {
		return nil, common.ErrorNotFound
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.byID == nil {
		return nil, common.ErrorNotFound
	}
	return f.byID, nil
}

type fakeProfilesRepo struct {
	created   *models.Profile
	createErr error

	stored *models.Profile
	getErr error

	lastUpdate models.ProfileUpdate
}

func (f *fakeProfilesRepo) Create(ctx context.Context, p *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = p
	return nil
}

func (f *fakeProfilesRepo) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil || f.stored.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return f.stored, nil
}

func (f *fakeProfilesRepo) Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.Profile, error) {
	f.lastUpdate = upd
	if f.stored == nil || f.stored.UserID != userID {
		return nil, common.ErrorNotFound
	}
	p := *f.stored
	if upd.Name != "" {
		p.Name = upd.Name
	}
	if upd.Degree != "" {
		p.Degree = upd.Degree
	}
	if upd.GradYear != 0 {
		p.GradYear = upd.GradYear
	}
	f.stored = &p
	return &p, nil
}

type fakeProductsRepo struct {
	mu       sync.Mutex
	items    []*models.Product
	listErr  error
	listHits int
	soldErr  error
}

func (f *fakeProductsRepo) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = "p" + string(rune('0'+len(f.items)+1))
	p.CreatedAt = time.Now()
	f.items = append([]*models.Product{p}, f.items...)
	return p, nil
}

func (f *fakeProductsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Product
	for _, p := range f.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductsRepo) MarkSold(ctx context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.soldErr != nil {
		return f.soldErr
	}
	for _, p := range f.items {
		if p.ID == id && p.OwnerID == ownerID {
			p.Sold = true
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error

	created []string
	deleted []string
	purged  int64
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return f.purged, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	pf *fakeProfilesRepo
	pr *fakeProductsRepo
	r  *fakeRefreshRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) Profiles(db dbx.DBTX) profiles.Repository           { return m.pf }
func (m *fakeRepoManager) Products(db dbx.DBTX) products.Repository           { return m.pr }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository { return m.r }

type fakeNotifier struct {
	mu        sync.Mutex
	published []string
	ch        chan struct{}
	cancelled bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{ch: make(chan struct{}, 1)}
}

func (n *fakeNotifier) Publish(ownerID string) {
	n.mu.Lock()
	n.published = append(n.published, ownerID)
	n.mu.Unlock()
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *fakeNotifier) Subscribe(ownerID string) (<-chan struct{}, func()) {
	return n.ch, func() {
		n.mu.Lock()
		n.cancelled = true
		n.mu.Unlock()
	}
}
