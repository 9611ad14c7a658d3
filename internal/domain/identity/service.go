package identity

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medscribe/medscribe/internal/platform/auth"
)

type Service struct {
	repo   Repository
	issuer *auth.Issuer
}

func NewService(repo Repository, issuer *auth.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Register creates a doctor account and returns it with the password hashed.
func (s *Service) Register(ctx context.Context, reg Registration) (*Doctor, error) {
	if reg.Name == "" || reg.Email == "" || reg.Username == "" {
		return nil, fmt.Errorf("name, email and username are required")
	}
	if err := checkPasswordStrength(reg.Password); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByUsername(ctx, reg.Username); err == nil {
		return nil, ErrDuplicateUsername
	}
	if _, err := s.repo.GetByEmail(ctx, reg.Email); err == nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	d := &Doctor{
		Name:               reg.Name,
		Email:              strings.ToLower(reg.Email),
		Username:           reg.Username,
		PasswordHash:       string(hash),
		RegistrationNumber: reg.RegistrationNumber,
		Degree:             reg.Degree,
		Specialization:     reg.Specialization,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Login verifies credentials and returns the doctor and a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (*Doctor, string, error) {
	d, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(d.ID, d.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return d, token, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func checkPasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
