package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Company      string    `json:"company,omitempty"`
	Title        string    `json:"title,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Valid user roles
const (
	RoleEmployee  = "employee"
	RoleCandidate = "candidate"
)

var validRoles = map[string]bool{
	RoleEmployee:  true,
	RoleCandidate: true,
}

func IsValidRole(role string) bool {
	return validRoles[role]
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	Title    string `json:"title,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is the payload returned by both login and register.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validation methods
func (r *RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.Name == "" || r.Role == "" {
		return fmt.Errorf("Email, password, name, and role are required")
	}
	if !isValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if !validRoles[r.Role] {
		return fmt.Errorf("invalid role")
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.Role == "" {
		return fmt.Errorf("Email, password, and role are required")
	}
	return nil
}

// Normalize methods
func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	// Company and title only apply to employees.
	if r.Role != RoleEmployee {
		r.Company = ""
		r.Title = ""
	} else {
		r.Company = strings.TrimSpace(r.Company)
		r.Title = strings.TrimSpace(r.Title)
	}
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Helper functions
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
