package domain

import "github.com/google/uuid"

// Role represents the access level of a user. Roles are ordered.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantAdmin Role = "restaurant_admin"
	RoleSystemAdmin     Role = "system_admin"
)

var roleLevels = map[Role]int{
	RoleCustomer:        1,
	RoleRestaurantAdmin: 2,
	RoleSystemAdmin:     3,
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants at least the rights of other
func (r Role) AtLeast(other Role) bool {
	return roleLevels[r] >= roleLevels[other] && r.IsValid()
}

// User is the authenticated caller of a command
type User struct {
	ID   uuid.UUID
	Role Role
}
