package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionmatrix/factory-portal/internal/models"
)

func adminIdentity() models.Identity {
	return models.Identity{
		ID: 1, Name: "Arif Rahman", Email: "admin@motionmatrix.com",
		Role: models.RoleAdmin, Department: models.DepartmentAdmin,
	}
}

func TestLoginPersistsAndRestores(t *testing.T) {
	dir := t.TempDir()

	m := NewManager(dir)
	require.NoError(t, m.Login(adminIdentity()))

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, adminIdentity(), current)

	// A fresh manager over the same directory simulates a restart.
	restarted := NewManager(dir)
	restored := restarted.Restore()
	assert.Equal(t, adminIdentity(), restored)
	assert.True(t, restarted.Active())
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Login(adminIdentity()))

	second := adminIdentity()
	second.ID = 7
	second.Email = "second.admin@motionmatrix.com"
	require.NoError(t, m.Login(second))

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, second, current)
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	m := NewManager(t.TempDir())
	worker := models.Identity{ID: 5, Name: "Rafiq Mia", Email: "rafiq@motionmatrix.com", Role: models.RoleWorker}

	err := m.Login(worker)
	assert.ErrorIs(t, err, ErrNotEligible)
	assert.False(t, m.Active())
	_, statErr := os.Stat(m.Path())
	assert.True(t, os.IsNotExist(statErr), "no durable copy may exist for a rejected login")
}

func TestLogoutClearsBothCopies(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Login(adminIdentity()))
	require.NoError(t, m.Logout())

	assert.False(t, m.Active())
	_, err := os.Stat(m.Path())
	assert.True(t, os.IsNotExist(err))

	// A restart after logout comes up anonymous.
	restarted := NewManager(dir)
	assert.True(t, restarted.Restore().IsZero())
}

func TestLogoutWhenAnonymousIsSafe(t *testing.T) {
	m := NewManager(t.TempDir())
	assert.NoError(t, m.Logout())
}

func TestRestoreMissingFileIsAnonymous(t *testing.T) {
	m := NewManager(t.TempDir())
	assert.True(t, m.Restore().IsZero())
	assert.False(t, m.Active())
}

func TestRestoreMalformedFileIsAnonymous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600))

	m := NewManager(dir)
	assert.True(t, m.Restore().IsZero())
	assert.False(t, m.Active())
}

func TestRestoreNonAdminPayloadIsAnonymous(t *testing.T) {
	// A tampered durable copy carrying a non-admin role must not
	// resurrect a session the login path would never have granted.
	dir := t.TempDir()
	payload := []byte(`{"id":5,"name":"Rafiq Mia","email":"rafiq@motionmatrix.com","role":"worker","department":"packaging"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), payload, 0o600))

	m := NewManager(dir)
	assert.True(t, m.Restore().IsZero())
	assert.False(t, m.Active())
}
