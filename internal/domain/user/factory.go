package user

import (
	"fmt"

	"centime/internal/shared/authorization"
)

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) error
}

// Factory creates User aggregates together with their Profile. Profile
// creation is an explicit step of account creation, not a persistence
// side effect, so callers always get both or neither.
type Factory struct {
	hasher PasswordHasher
}

func NewFactory(hasher PasswordHasher) *Factory {
	return &Factory{hasher: hasher}
}

// CreateAccount builds a new user with the given role and its profile.
// Neither is persisted; the caller saves both in one transaction.
func (f *Factory) CreateAccount(
	username, email, password string,
	role authorization.Role,
	fullName, phone, address string,
) (*User, *Profile, error) {
	if password == "" {
		return nil, nil, fmt.Errorf("password is required")
	}

	hash, err := f.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := NewUser(username, email, hash, role)
	if err != nil {
		return nil, nil, err
	}

	// Profile is attached after the user gets an ID; build it unkeyed here.
	now := u.CreatedAt()
	profile := &Profile{
		fullName:  fullName,
		phone:     phone,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}

	return u, profile, nil
}

// AttachProfile keys the profile to a persisted user.
func (f *Factory) AttachProfile(profile *Profile, userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	profile.userID = userID
	return nil
}

// CreateCustomer is CreateAccount fixed to the customer role.
func (f *Factory) CreateCustomer(username, email, password, fullName, phone, address string) (*User, *Profile, error) {
	return f.CreateAccount(username, email, password, authorization.RoleCustomer, fullName, phone, address)
}
