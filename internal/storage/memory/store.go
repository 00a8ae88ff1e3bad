// Package memory holds the seeded account fixture the portal ships with.
// It stands in for a real identity service: the record set is fixed at
// construction and never mutated at runtime.
package memory

import (
	"context"

	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

// Ensure Store satisfies the storage.AccountStore interface at compile time.
var _ storage.AccountStore = (*Store)(nil)

// Store is a read-only account fixture scanned linearly on every lookup.
type Store struct {
	accounts []models.Account
}

// New returns a store seeded with the stock MotionMatrix staff records.
func New() *Store {
	return NewWithAccounts(SeedAccounts())
}

// NewWithAccounts returns a store over the given records. The slice is
// copied; callers cannot mutate the fixture afterwards.
func NewWithAccounts(accounts []models.Account) *Store {
	fixed := make([]models.Account, len(accounts))
	copy(fixed, accounts)
	return &Store{accounts: fixed}
}

// SeedAccounts returns the stock record set. Passwords are stored in the
// clear; this fixture exists for demos and tests, not production use.
func SeedAccounts() []models.Account {
	return []models.Account{
		{ID: 1, Name: "Arif Rahman", Email: "admin@motionmatrix.com", Password: "admin123", Phone: "+8801711000001", Role: models.RoleAdmin, Department: models.DepartmentAdmin, Gender: models.GenderMale, Status: models.StatusActive},
		{ID: 2, Name: "Salma Akter", Email: "salma.manager@motionmatrix.com", Password: "manager123", Phone: "+8801711000002", Role: models.RoleManager, Department: models.DepartmentCutting, Gender: models.GenderFemale, Status: models.StatusActive},
		{ID: 3, Name: "Kamal Hossain", Email: "kamal.floor@motionmatrix.com", Password: "floor123", Phone: "+8801711000003", Role: models.RoleFloorManager, Department: models.DepartmentSewing, Gender: models.GenderMale, Status: models.StatusActive},
		{ID: 4, Name: "Nadia Islam", Email: "nadia.super@motionmatrix.com", Password: "super123", Phone: "+8801711000004", Role: models.RoleSupervisor, Department: models.DepartmentFinishing, Gender: models.GenderFemale, Status: models.StatusActive},
		{ID: 5, Name: "Rafiq Mia", Email: "rafiq@motionmatrix.com", Password: "worker123", Phone: "+8801711000005", Role: models.RoleWorker, Department: models.DepartmentPackaging, Gender: models.GenderMale, Status: models.StatusActive},
		{ID: 6, Name: "Jesmin Begum", Email: "jesmin@motionmatrix.com", Password: "worker456", Phone: "+8801711000006", Role: models.RoleWorker, Department: models.DepartmentQuality, Gender: models.GenderFemale, Status: models.StatusInactive},
	}
}

// Authenticate scans for an exact email+password match. Any single-field
// mismatch yields the same ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	for _, acct := range s.accounts {
		if acct.Email == email && acct.Password == password {
			return acct.Identity(), nil
		}
	}
	return models.Identity{}, storage.ErrInvalidCredentials
}

// FindByEmail fetches the account with the exact email, or ErrNotFound.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	for _, acct := range s.accounts {
		if acct.Email == email {
			return acct, nil
		}
	}
	return models.Account{}, storage.ErrNotFound
}

// ListByRole filters by role preserving seed order; empty role returns all.
func (s *Store) ListByRole(ctx context.Context, role string) ([]models.Account, error) {
	out := make([]models.Account, 0, len(s.accounts))
	for _, acct := range s.accounts {
		if role == "" || acct.Role == role {
			out = append(out, acct)
		}
	}
	return out, nil
}
