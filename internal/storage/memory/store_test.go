package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

func TestAuthenticateExactMatch(t *testing.T) {
	store := New()
	ctx := context.Background()

	id, err := store.Authenticate(ctx, "admin@motionmatrix.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, id.Role)
	assert.Equal(t, "Arif Rahman", id.Name)
	assert.Equal(t, int64(1), id.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, wrongPassword := store.Authenticate(ctx, "admin@motionmatrix.com", "wrong")
	_, unknownEmail := store.Authenticate(ctx, "ghost@motionmatrix.com", "admin123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	// Both failure modes must surface the same error, so the login
	// surface cannot be used to enumerate accounts.
	assert.ErrorIs(t, wrongPassword, storage.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, storage.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateIsCaseSensitive(t *testing.T) {
	store := New()
	_, err := store.Authenticate(context.Background(), "Admin@MotionMatrix.com", "admin123")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
}

func TestAuthenticateReturnsNoPassword(t *testing.T) {
	store := New()
	id, err := store.Authenticate(context.Background(), "rafiq@motionmatrix.com", "worker123")
	require.NoError(t, err)
	// Identity is the reduced projection; it has no credential fields at
	// all, only what the session may hold.
	assert.Equal(t, models.Identity{
		ID: 5, Name: "Rafiq Mia", Email: "rafiq@motionmatrix.com",
		Role: models.RoleWorker, Department: models.DepartmentPackaging,
	}, id)
}

func TestFindByEmail(t *testing.T) {
	store := New()
	ctx := context.Background()

	acct, err := store.FindByEmail(ctx, "jesmin@motionmatrix.com")
	require.NoError(t, err)
	assert.Equal(t, "Jesmin Begum", acct.Name)

	_, err = store.FindByEmail(ctx, "missing@motionmatrix.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListByRolePreservesOrder(t *testing.T) {
	store := New()
	ctx := context.Background()

	workers, err := store.ListByRole(ctx, models.RoleWorker)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "Rafiq Mia", workers[0].Name)
	assert.Equal(t, "Jesmin Begum", workers[1].Name)

	all, err := store.ListByRole(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(SeedAccounts()))

	none, err := store.ListByRole(ctx, "ghost_role")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNewWithAccountsCopiesFixture(t *testing.T) {
	seed := []models.Account{{ID: 9, Name: "Only", Email: "only@x.co", Password: "pw123456", Role: models.RoleAdmin}}
	store := NewWithAccounts(seed)
	seed[0].Email = "mutated@x.co"

	_, err := store.FindByEmail(context.Background(), "only@x.co")
	assert.NoError(t, err)
}
