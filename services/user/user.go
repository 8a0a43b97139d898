package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "ridelink/database/repository/user"
	"ridelink/models"
	"ridelink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for any authentication failure; it
	// deliberately does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenLifetime = 24 * time.Hour

// DefaultUserService is the standard implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(input RegistrationInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("email, password, and name are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	switch role {
	case models.RolePassenger, models.RoleOperator, models.RoleTaxi:
	default:
		role = models.RolePassenger
	}

	rec := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return rec, nil
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to mint token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Email: userRec.Email,
		Name:  userRec.Name,
		Role:  userRec.Role,
		Token: token,
	}, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// EnsureByEmail resolves a user by email, creating a bare passenger record
// when the email has never registered. The generated password is random and
// unusable until reset.
func (s *DefaultUserService) EnsureByEmail(email string) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}
	rec := &models.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Name:         "Guest Passenger",
		Role:         models.RolePassenger,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to create guest user: %w", err)
	}
	return rec, nil
}
