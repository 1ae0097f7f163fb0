// Package models defines the account records persisted by the schoolplatform
// client and the views handed to callers.
package models

import "time"

// PublicUser is the view of an account exposed to callers and stored as the
// session snapshot. It never carries the password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRecord is one element of the persisted registry.
type UserRecord struct {
	PublicUser
	PasswordHash string `json:"passwordHash"`
}

// Public returns the record without its password hash.
func (r UserRecord) Public() PublicUser {
	return r.PublicUser
}

// ProfileUpdate carries the fields a caller wants to change. A nil or empty
// field is left unchanged.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
