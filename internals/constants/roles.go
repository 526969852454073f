package constants

// Application roles carried inside the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleParent  = "parent"
)
