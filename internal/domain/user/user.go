package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleManager Role = "manager"
	RoleWaiter  Role = "waiter"
	RoleClient  Role = "client"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleWaiter, RoleClient:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
