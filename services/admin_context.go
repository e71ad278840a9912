package services

import "github.com/ghs-carnival/carnival-server/models"

// AdminContext is the session context threaded from the auth middleware into
// the mutation gateway. It is issued at login and carries the caller's
// authorization scope; nothing in the services layer reaches for ambient
// request state.
type AdminContext struct {
	UserID  int
	Role    models.UserRole
	SportID *int
}

func (a AdminContext) IsSuperAdmin() bool {
	return a.Role == models.RoleSuperAdmin
}

// CanManageSport reports whether the caller's scope covers the given sport.
// A sport admin outside their assignment is rejected, never redirected.
func (a AdminContext) CanManageSport(sportID int) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.SportID != nil && *a.SportID == sportID
}
