package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medscribe/medscribe/internal/platform/auth"
)

type mockRepo struct {
	doctors []*Doctor
}

func (m *mockRepo) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	stored := *d
	m.doctors = append(m.doctors, &stored)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	for _, d := range m.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) GetByUsername(ctx context.Context, username string) (*Doctor, error) {
	for _, d := range m.doctors {
		if d.Username == username {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*Doctor, error) {
	for _, d := range m.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func newTestService() *Service {
	issuer := auth.NewIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	return NewService(&mockRepo{}, issuer)
}

func validRegistration() Registration {
	return Registration{
		Name:               "Asha Rao",
		Email:              "Asha.Rao@Example.com",
		Username:           "asharao",
		Password:           "Sup3rSecret",
		RegistrationNumber: "MCI-12345",
		Degree:             "MBBS, MD",
		Specialization:     "Internal Medicine",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()

	d, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("id not assigned")
	}
	if d.Email != "asha.rao@example.com" {
		t.Errorf("email = %q, want lowercased", d.Email)
	}
	if d.PasswordHash == "Sup3rSecret" || d.PasswordHash == "" {
		t.Error("password stored in the clear or missing")
	}

	got, token, err := svc.Login(context.Background(), "asharao", "Sup3rSecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != d.ID {
		t.Error("login returned a different doctor")
	}
	if token == "" {
		t.Error("no token issued")
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestService()

	weak := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, pw := range weak {
		reg := validRegistration()
		reg.Password = pw
		if _, err := svc.Register(context.Background(), reg); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("password %q: error = %v, want ErrWeakPassword", pw, err)
		}
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService()
	reg := validRegistration()
	reg.Email = ""
	if _, err := svc.Register(context.Background(), reg); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestRegister_Duplicates(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	dupUsername := validRegistration()
	dupUsername.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), dupUsername); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("error = %v, want ErrDuplicateUsername", err)
	}

	dupEmail := validRegistration()
	dupEmail.Username = "otheruser"
	dupEmail.Email = "asha.rao@example.com"
	if _, err := svc.Register(context.Background(), dupEmail); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("error = %v, want ErrDuplicateEmail", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "asharao", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "Sup3rSecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}
