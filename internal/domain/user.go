package domain

import "time"

// User represents a registered account stored in the users table.
type User struct {
	ID             int64
	Email          string
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	IsActive  *bool
}

// Apply merges the patch into a copy of the given user and returns it.
// The id, password hash and timestamps are never touched here.
func (p UserPatch) Apply(user User) User {
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.FirstName != nil {
		user.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		user.LastName = *p.LastName
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
	return user
}
