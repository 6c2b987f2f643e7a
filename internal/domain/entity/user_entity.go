package entity

import (
	"github.com/oksasatya/go-user-lookup/pkg/validation"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Record is the raw, unvalidated row a record source hands back.
// It only lives long enough to be turned into a User.
type Record struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// User is the aggregate root for the user domain.
// Fields are unexported: a User can only be obtained through NewUser,
// so every instance holds a positive id and a valid email.
type User struct {
	id     int64
	name   string
	email  string
	active bool
}

// NewUser validates id then email and returns the first failure.
func NewUser(id int64, name, email string, active bool) (*User, error) {
	if err := validation.ValidateIdentifier(id); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	return &User{id: id, name: name, email: email, active: active}, nil
}

// NewUserFromRecord builds a User from a record source row.
func NewUserFromRecord(r Record) (*User, error) {
	return NewUser(r.ID, r.Name, r.Email, r.Active)
}

func (u *User) ID() int64      { return u.id }
func (u *User) Name() string   { return u.name }
func (u *User) Email() string  { return u.email }
func (u *User) IsActive() bool { return u.active }

// Status maps the active flag to its display string.
func (u *User) Status() string {
	if u.active {
		return StatusActive
	}
	return StatusInactive
}

// Profile projects the user into its display fields: id, name, email, status.
func (u *User) Profile() Profile {
	return Profile{
		{Key: ProfileKeyID, Value: u.id},
		{Key: ProfileKeyName, Value: u.name},
		{Key: ProfileKeyEmail, Value: u.email},
		{Key: ProfileKeyStatus, Value: u.Status()},
	}
}
