package auth

import (
	"context"

	"github.com/mmynk/aidledger/internal/models"
)

// Authenticator abstracts how staff accounts prove who they are, so the
// service layer does not depend on passwords specifically.
type Authenticator interface {
	// Register creates a new account with the given role.
	Register(ctx context.Context, email, displayName, credential string, role models.Role) (*models.User, error)

	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error
}
