package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

type userRepo interface {
	Create(u UserRecord) error
	ByEmail(email string) (UserRecord, error)
	Count() int
}

// PasswordScheme encodes passwords before they reach the repository.
type PasswordScheme interface {
	Name() string
	Encode(password string) (string, error)
	Compare(encoded, password string) bool
}

// Service is the credential store: registration and authentication over a
// user repository.
type Service struct {
	repo   userRepo
	scheme PasswordScheme
}

func NewService(r userRepo, s PasswordScheme) *Service {
	return &Service{
		repo:   r,
		scheme: s,
	}
}

// Register stores a new user. It fails with ErrMissingField when either value
// is empty and with ErrDuplicateUser when the email is already registered.
func (s *Service) Register(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingField
	}

	encoded, err := s.scheme.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}

	u := UserRecord{
		ID:       uuid.New(),
		Email:    email,
		Password: encoded,
	}
	if err := s.repo.Create(u); err != nil {
		if errors.Is(err, ErrExists) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	log.Printf("user signed up: %s (id=%s), users=%d", u.Email, u.ID, s.repo.Count())
	return nil
}

// Authenticate checks email and password against the stored record. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingField
	}

	u, err := s.repo.ByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if !s.scheme.Compare(u.Password, password) {
		return ErrInvalidCredentials
	}
	return nil
}
