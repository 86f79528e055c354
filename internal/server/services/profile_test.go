package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T, repo *fakeProfilesRepo) *ProfileService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewProfileService(db, &fakeRepoManager{pf: repo})
}

func TestProfileService_Get(t *testing.T) {
	repo := &fakeProfilesRepo{stored: &models.Profile{UserID: "u1", Name: "Ana", Email: "ana@uni.edu"}}
	s := newProfileService(t, repo)

	p, err := s.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)

	_, err = s.Get(context.Background(), "u2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProfileService_UpdateTrimsAndKeepsBlanks(t *testing.T) {
	repo := &fakeProfilesRepo{stored: &models.Profile{UserID: "u1", Name: "Ana", Degree: "CS", GradYear: 2024}}
	s := newProfileService(t, repo)

	p, err := s.Update(context.Background(), "u1", models.ProfileUpdate{Name: "  Ana Maria ", Degree: "   "})
	require.NoError(t, err)

	assert.Equal(t, models.ProfileUpdate{Name: "Ana Maria"}, repo.lastUpdate)
	assert.Equal(t, "Ana Maria", p.Name)
	assert.Equal(t, "CS", p.Degree)
	assert.Equal(t, 2024, p.GradYear)
}

func TestProfileService_UpdateRejectsBadYear(t *testing.T) {
	s := newProfileService(t, &fakeProfilesRepo{stored: &models.Profile{UserID: "u1"}})

	_, err := s.Update(context.Background(), "u1", models.ProfileUpdate{GradYear: 99})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestProfileService_UpdateMissing(t *testing.T) {
	s := newProfileService(t, &fakeProfilesRepo{})

	_, err := s.Update(context.Background(), "u1", models.ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
