package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	doctorID := uuid.New()

	token, err := issuer.Issue(doctorID, "asharao")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != doctorID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, doctorID)
	}
	if claims.Username != "asharao" {
		t.Errorf("username = %q, want asharao", claims.Username)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewIssuer(testSecret, time.Hour).Issue(uuid.New(), "asharao")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewIssuer("ffffffffffffffffffffffffffffffff", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestParse_Expired(t *testing.T) {
	issuer := NewIssuer(testSecret, -time.Minute)
	token, err := issuer.Issue(uuid.New(), "asharao")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Parse(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func middlewareRequest(t *testing.T, issuer *Issuer, authorization string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(issuer)(func(c echo.Context) error {
		id, ok := DoctorIDFromContext(c.Request().Context())
		if !ok {
			t.Error("doctor id missing from context")
		}
		if id == uuid.Nil {
			t.Error("doctor id is nil")
		}
		if UsernameFromContext(c.Request().Context()) == "" {
			t.Error("username missing from context")
		}
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	token, err := issuer.Issue(uuid.New(), "asharao")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, err := middlewareRequest(t, issuer, "Bearer "+token)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := middlewareRequest(t, issuer, tt.authorization)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", httpErr.Code)
			}
		})
	}
}

func TestDoctorIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := DoctorIDFromContext(req.Context()); ok {
		t.Error("doctor id reported present on a bare context")
	}
}
