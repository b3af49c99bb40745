// ABOUTME: User model and role constants for the coaching roster.
// ABOUTME: Passwords are stored plaintext for compatibility with existing data.
package models

// Role distinguishes coach accounts from athlete accounts.
type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// User represents a login account, either the coach or an athlete.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// NewAthleteUser creates a User with role athlete and a generated ID.
func NewAthleteUser(username, password, name, email, phone string) *User {
	return &User{
		ID:       NewAthleteID(),
		Username: username,
		Password: password,
		Name:     name,
		Role:     RoleAthlete,
		Email:    email,
		Phone:    phone,
	}
}
