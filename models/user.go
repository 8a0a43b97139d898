package models

import "time"

// User roles.
const (
	RolePassenger = "passenger"
	RoleOperator  = "operator"
	RoleTaxi      = "taxi"
)

// User represents a registered account. PasswordHash is a bcrypt hash;
// plaintext passwords never reach the repository.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
