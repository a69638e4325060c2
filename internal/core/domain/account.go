package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account models a credentialed principal. Admins and users live in separate
// collections; Role selects which one. PurchasedCourses is only populated for
// the user variant and holds course ids in insertion order.
type Account struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	PurchasedCourses []string  `json:"purchased_courses,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ValidRole reports whether role names a known account variant.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
