package helpers

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the caller as asserted by a verified token.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Authorize allows admins and the owner of the resource; anything else,
// including an unknown role, is forbidden.
func Authorize(who Identity, ownerID int64) error {
	if !ValidRole(who.Role) {
		return ErrForbidden
	}
	if who.IsAdmin() || who.ID == ownerID {
		return nil
	}
	return ErrForbidden
}
