package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the profile returned by GET auth/me. The platform API is the
// system of record; the frontend only holds this for the current session.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Tel   string `json:"tel"`
	Role  string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
