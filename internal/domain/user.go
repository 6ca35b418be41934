package domain

import "time"

// User represents a registered account.
// The password hash and the last issued token never leave the server.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	Token          *string    `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}

// UserSummary is the public projection used by the user listing.
// Timestamps serialize as RFC 3339 strings, unlike products which use epoch
// seconds; existing clients depend on both formats.
type UserSummary struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// NewUser creates a user that has not been persisted yet; the store assigns
// the ID. hashedPassword must already be hashed.
func NewUser(username, email, hashedPassword string, now time.Time) (*User, error) {
	u := &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now.UTC(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks that every required field is present.
func (u *User) Validate() error {
	var missing []string
	if u.Username == "" {
		missing = append(missing, "username")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.HashedPassword == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return NewMissingFieldsError(missing...)
	}
	return nil
}

// Identity returns the token identity for u.
func (u *User) Identity() Identity {
	return Identity{Email: u.Email, Username: u.Username}
}

// Summary returns the listing projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
