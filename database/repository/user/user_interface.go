package userRepo

import "ridelink/models"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(email string) (*models.User, error)
}
