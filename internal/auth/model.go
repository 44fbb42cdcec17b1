package auth

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the domain entity. Password holds a bcrypt hash and never leaves the service.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Login is one entry of the login history.
type Login struct {
	ID       string    `json:"_id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
}

// Registration is returned to the client after a user is created.
type Registration struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
}
