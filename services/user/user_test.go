package user

import (
	"errors"
	"testing"

	"ridelink/models"
	"ridelink/utils"

	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository keyed by ID.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	created, err := svc.Register(RegistrationInput{
		Email:    "Rider@Example.com",
		Password: "hunter22",
		Name:     "Test Rider",
		Role:     models.RolePassenger,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Email != "rider@example.com" {
		t.Fatalf("email should be lowercased, got %q", created.Email)
	}
	if created.PasswordHash == "hunter22" {
		t.Fatal("plaintext password must never be stored")
	}

	auth, err := svc.Authenticate("rider@example.com", "hunter22")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("expected a token")
	}
	claims, err := utils.ExtractClaims(auth.Token)
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != models.RolePassenger {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := RegistrationInput{Email: "rider@example.com", Password: "hunter22", Name: "Test Rider"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(input)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterDefaultsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	created, err := svc.Register(RegistrationInput{
		Email:    "rider@example.com",
		Password: "hunter22",
		Name:     "Test Rider",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != models.RolePassenger {
		t.Fatalf("role = %q, want passenger for an unknown role", created.Role)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(RegistrationInput{Email: "rider@example.com", Password: "hunter22", Name: "Test Rider"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate("rider@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	guest, err := svc.EnsureByEmail("Walkin@Example.com")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if guest.Email != "walkin@example.com" || guest.Role != models.RolePassenger {
		t.Fatalf("guest = %+v", guest)
	}
	if bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte("")) == nil {
		t.Fatal("placeholder password must not be empty")
	}

	again, err := svc.EnsureByEmail("walkin@example.com")
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if again.ID != guest.ID {
		t.Fatal("a second ensure must return the existing record, not create another")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}
