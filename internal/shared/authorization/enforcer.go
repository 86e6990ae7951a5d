package authorization

// Enforcer answers resource-action policy questions for a subject. The
// subject is a role name or a user id previously granted a role.
type Enforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddRoleForUser(userID string, role string) error
	LoadPolicy() error
}
