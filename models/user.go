package models

// Role user outlet.
const (
	RoleStaff = "staff"
	RoleOwner = "owner"
)

// User adalah akun outlet. Password disimpan sebagai hash bcrypt dan tidak
// pernah ikut di-serialize ke response.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
