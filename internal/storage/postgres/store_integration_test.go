package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

// TestPostgresStoreIntegration exercises the pgx store against a live
// database, including the seeded fixture accounts.
func TestPostgresStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_POSTGRES_INTEGRATION") != "true" {
		t.Skip("set RUN_POSTGRES_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := NewAccountStore(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	id, err := store.Authenticate(ctx, "admin@motionmatrix.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, id.Role)

	_, err = store.Authenticate(ctx, "admin@motionmatrix.com", "wrong1")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)

	_, err = store.Authenticate(ctx, "ghost@motionmatrix.com", "admin123")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)

	acct, err := store.FindByEmail(ctx, "rafiq@motionmatrix.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleWorker, acct.Role)
	assert.Empty(t, acct.Password, "plaintext never comes back from the database")
	assert.NotEmpty(t, acct.PasswordHash)

	workers, err := store.ListByRole(ctx, models.RoleWorker)
	require.NoError(t, err)
	assert.NotEmpty(t, workers)
	for _, w := range workers {
		assert.Equal(t, models.RoleWorker, w.Role)
	}
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
