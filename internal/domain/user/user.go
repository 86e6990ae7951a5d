package user

import (
	"fmt"
	"strings"
	"time"

	"centime/internal/shared/authorization"
	"centime/internal/shared/biztime"
)

// User is the account aggregate root. The role enum distinguishes staff
// admins from billed customers; there is no raw staff flag.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	role         authorization.Role
	active       bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user account. The password hash must already be computed.
func NewUser(username, email, passwordHash string, role authorization.Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserReconstructParams carries persisted state back into the aggregate.
type UserReconstructParams struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Role         authorization.Role
	Active       bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(p UserReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", p.Role)
	}

	return &User{
		id:           p.ID,
		username:     p.Username,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		role:         p.Role,
		active:       p.Active,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                  { return u.id }
func (u *User) Username() string          { return u.username }
func (u *User) Email() string             { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() authorization.Role  { return u.role }
func (u *User) IsActive() bool            { return u.active }
func (u *User) Version() int              { return u.version }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Deactivate disables the account.
func (u *User) Deactivate() {
	if !u.active {
		return
	}
	u.active = false
	u.updatedAt = biztime.NowUTC()
	u.version++
}

// Activate re-enables the account.
func (u *User) Activate() {
	if u.active {
		return
	}
	u.active = true
	u.updatedAt = biztime.NowUTC()
	u.version++
}
