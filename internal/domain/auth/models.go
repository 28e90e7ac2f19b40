package auth

import "time"

const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleHR         = "hr"
)

var Roles = []string{RoleAdmin, RoleDispatcher, RoleHR}

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	BaseSalary float64   `json:"baseSalary"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UserContext is the authenticated identity carried on the request context.
type UserContext struct {
	UserID string
	Name   string
	Role   string
}
