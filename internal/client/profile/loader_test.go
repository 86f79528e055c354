package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	profile *models.Profile
	getErr  error
	calls   int

	updated   *models.Profile
	updateErr error
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	f.calls++
	return f.profile, f.getErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	f.updated = &p
	return f.updateErr
}

var sess = models.Session{UserID: "u1", Email: "ann@x.io", DisplayName: "Ann", IsAuthenticated: true}

func TestLoad_Found(t *testing.T) {
	c := &fakeClient{profile: &models.Profile{Name: "Ann B", Degree: "CS", GradYear: 2020, Email: "ann@x.io"}}
	r := NewLoader(c, logging.Discard()).Load(context.Background(), sess)

	require.True(t, r.OK())
	assert.False(t, r.Synthesized)
	assert.Equal(t, "Ann B", r.Profile.Name)
	assert.Equal(t, 1, c.calls)
}

func TestLoad_NotFoundSynthesizes(t *testing.T) {
	c := &fakeClient{getErr: common.ErrorNotFound}
	r := NewLoader(c, logging.Discard()).Load(context.Background(), sess)

	require.True(t, r.OK())
	assert.True(t, r.Synthesized)
	assert.Equal(t, &models.Profile{Name: "Ann", Email: "ann@x.io"}, r.Profile)
}

func TestLoad_NotFoundFallsBackToEmail(t *testing.T) {
	c := &fakeClient{getErr: common.ErrorNotFound}
	s := sess
	s.DisplayName = ""
	r := NewLoader(c, logging.Discard()).Load(context.Background(), s)

	assert.Equal(t, "ann@x.io", r.Profile.Name)
}

func TestLoad_OtherErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	r := NewLoader(&fakeClient{getErr: boom}, logging.Discard()).Load(context.Background(), sess)

	assert.False(t, r.OK())
	assert.ErrorIs(t, r.Err, boom)
	assert.Nil(t, r.Profile)
}

func TestSave(t *testing.T) {
	tests := []struct {
		name     string
		pname    string
		degree   string
		year     int
		wantErr  error
		wantSent *models.Profile
	}{
		{name: "trims", pname: "  Ann  ", degree: " CS ", year: 2021, wantSent: &models.Profile{Name: "Ann", Degree: "CS", GradYear: 2021}},
		{name: "partial", pname: "Ann", wantSent: &models.Profile{Name: "Ann"}},
		{name: "bad year", pname: "Ann", year: 1800, wantErr: common.ErrorValidation},
		{name: "empty", pname: "  ", wantErr: common.ErrorValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{}
			err := NewLoader(c, logging.Discard()).Save(context.Background(), tt.pname, tt.degree, tt.year)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c.updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, c.updated)
		})
	}
}
