// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package models

import "time"

// User represents a registered account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-assigned identifier. SQL stores render their integer
	// keys in base 10, the document store uses the hex form of an ObjectID.
	ID string `json:"id"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CollegeName string `json:"college_name"`
	Course      string `json:"course"`

	// Password is the plaintext credential received from a form.
	// It lives only for the duration of a signup or login request and is
	// cleared by the auth service once PasswordHash is set.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash persisted by the store.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
