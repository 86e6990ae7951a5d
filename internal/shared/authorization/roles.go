// Package authorization defines the user role enum and capability checks.
// Roles replace a raw staff flag so policy decisions stay out of routing.
package authorization

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// CanManageCustomers reports whether the role may create and inspect
// customer accounts and assign bills directly.
func (r Role) CanManageCustomers() bool {
	return r == RoleAdmin
}

// CanActFor reports whether the role may operate on another user's
// billing data. Customers only act for themselves.
func (r Role) CanActFor(actorID, ownerID uint) bool {
	if r.IsAdmin() {
		return true
	}
	return actorID == ownerID
}

func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
