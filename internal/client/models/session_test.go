package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Session(t *testing.T) {
	c := &Credentials{AccessToken: "a", RefreshToken: "r", UserID: "u1", Email: "a@b.io", DisplayName: "Ann"}
	assert.Equal(t, Session{UserID: "u1", Email: "a@b.io", DisplayName: "Ann", IsAuthenticated: true}, c.Session())

	empty := &Credentials{}
	assert.False(t, empty.Session().IsAuthenticated)
}
