// Package session holds the single authenticated identity, mirrored to a
// durable JSON file so it survives a restart.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/models"
)

// FileName is the well-known key under which the durable copy lives.
const FileName = "motionmatrix_session.json"

// ErrNotEligible rejects a login for a role that may not hold a session.
// Only admin accounts have a dashboard today; other roles authenticate
// successfully but stay anonymous.
var ErrNotEligible = errors.New("only admin accounts receive a session")

// Manager owns the at-most-one active identity. All mutations go through
// Login, Logout, and Restore; there is no other way to change the session.
type Manager struct {
	mu      sync.RWMutex
	path    string
	current models.Identity
	active  bool
}

// NewManager creates a manager persisting to the given directory.
func NewManager(dir string) *Manager {
	return &Manager{path: filepath.Join(dir, FileName)}
}

// Path returns the durable copy's location.
func (m *Manager) Path() string {
	return m.path
}

// Restore loads the durable copy, if any, as the initial session. A
// missing, malformed, or non-admin payload degrades to anonymous rather
// than failing: a corrupt session file must never take the portal down.
func (m *Manager) Restore() models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("session file unreadable, starting anonymous")
		}
		return models.Identity{}
	}

	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		log.WithError(err).Warn("session file malformed, starting anonymous")
		return models.Identity{}
	}
	if !id.IsAdmin() || id.Email == "" {
		// A stale or tampered payload carrying a non-admin role must not
		// resurrect a session the login path would never have granted.
		log.WithField("role", id.Role).Warn("session file not admin-eligible, starting anonymous")
		return models.Identity{}
	}

	m.current = id
	m.active = true
	return id
}

// Login stores the identity in memory and in the durable copy,
// overwriting any prior session.
func (m *Manager) Login(id models.Identity) error {
	if !id.IsAdmin() {
		return ErrNotEligible
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	m.current = id
	m.active = true
	log.WithFields(log.Fields{"id": id.ID, "email": id.Email}).Info("session created")
	return nil
}

// Logout clears both the in-memory and durable copies. Safe to call when
// already anonymous.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Identity{}
	m.active = false

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	log.Info("session cleared")
	return nil
}

// Current returns the active identity, if any.
func (m *Manager) Current() (models.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.active
}

// Active reports whether a session exists.
func (m *Manager) Active() bool {
	_, ok := m.Current()
	return ok
}
