// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account in the credential store.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	DisplayName  string
	CreatedAt    time.Time
}

// Profile is the users/{uid} document: one per user, owned by that user.
type Profile struct {
	UserID   string
	Name     string
	Degree   string
	GradYear int
	Email    string
}

// ProfileUpdate carries the fields an edit-profile action may change.
type ProfileUpdate struct {
	Name     string
	Degree   string
	GradYear int
}
