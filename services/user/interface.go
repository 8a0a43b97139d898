package user

import "ridelink/models"

// RegistrationInput carries the fields accepted at sign-up.
type RegistrationInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService defines account operations.
type UserService interface {
	Register(input RegistrationInput) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// EnsureByEmail resolves a user by email, creating a passenger record on
	// the fly when the email is not yet registered.
	EnsureByEmail(email string) (*models.User, error)
}
