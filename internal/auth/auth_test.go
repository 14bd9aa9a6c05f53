package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "  Case.Worker@Example.org ", "Case Worker", "correct horse", models.RoleUser)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "case.worker@example.org" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}

	got, err := a.Authenticate(ctx, "CASE.WORKER@example.org", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID || got.Role != models.RoleUser {
		t.Errorf("Authenticate returned %+v", got)
	}
}

func TestRegisterErrors(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()
	if _, err := a.Register(ctx, "admin@example.org", "Admin", "password1", models.RoleAdmin); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		role     models.Role
		want     error
	}{
		{"duplicate email", "ADMIN@example.org", "password2", models.RoleUser, ErrEmailExists},
		{"weak password", "new@example.org", "short", models.RoleUser, ErrWeakPassword},
		{"bad role", "new@example.org", "password1", "owner", ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, "X", tt.password, tt.role)
			if !errors.Is(err, tt.want) {
				t.Errorf("Register error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAuthenticateRejects(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()
	if _, err := a.Register(ctx, "user@example.org", "User", "password1", models.RoleUser); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := a.Authenticate(ctx, "user@example.org", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@example.org", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("0123456789abcdef", time.Hour)
	user := models.NewUser("admin@example.org", "Admin", "hash", models.RoleAdmin)

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != models.RoleAdmin || claims.Email != user.Email {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejects(t *testing.T) {
	user := models.NewUser("user@example.org", "User", "hash", models.RoleUser)

	issued := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	m := NewJWTManager("0123456789abcdef", time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: got %v", err)
	}

	other := NewJWTManager("fedcba9876543210", time.Hour)
	other.now = func() time.Time { return issued }
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v", err)
	}

	if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v", err)
	}
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	m := NewJWTManager("0123456789abcdef", time.Hour)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, claims *Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		return s
	}
	claims := func(issuer string) *Claims {
		return &Claims{
			UserID: "u1",
			Role:   models.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{"other issuer", sign(jwt.SigningMethodHS256, []byte("0123456789abcdef"), claims("someone-else"))},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims(Issuer))},
		{"subject mismatch", func() string {
			c := claims(Issuer)
			c.Subject = "u2"
			return sign(jwt.SigningMethodHS256, []byte("0123456789abcdef"), c)
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}
