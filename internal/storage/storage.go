package storage

import (
	"context"
	"errors"

	"github.com/motionmatrix/factory-portal/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is the single authentication failure. It never
// distinguishes an unknown email from a wrong password, so a caller cannot
// enumerate accounts through the login surface.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AccountStore captures the lookup operations the portal needs. The set is
// read-only on purpose: the creation forms discard their submissions, and a
// real identity backend can later slot in behind this interface.
type AccountStore interface {
	// Authenticate returns the reduced identity on an exact credential
	// match, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
	// FindByEmail fetches an account by its exact email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	// ListByRole filters accounts by role, preserving store order. An
	// empty role returns every account.
	ListByRole(ctx context.Context, role string) ([]models.Account, error)
}
