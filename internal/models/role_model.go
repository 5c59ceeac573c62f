package models

// Role is the application role attached to an account.
// The zero assignment (no document in the roles collection) means RoleUser;
// callers should never interpret a missing role document as an error.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultRole is the role resolved for an identifier with no role assignment.
const DefaultRole = RoleUser

// IsValid reports whether r is one of the assignable roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// RoleAssignment is the document stored in the roles collection.
// The document ID is the account UID; at most one assignment exists per UID.
type RoleAssignment struct {
	ID   string `json:"id" firestore:"-"`
	Role Role   `json:"role" firestore:"role"`
}
