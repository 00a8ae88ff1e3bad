package models

import "time"

// Account is a full staff record as held by the credential store.
// Password is only populated by the in-memory fixture store; the Postgres
// store keeps a bcrypt hash instead. Neither ever leaves the process.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	Gender       string    `json:"gender,omitempty"`
	Status       string    `json:"status"`
	JoinedAt     time.Time `json:"joined_at,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Identity returns the reduced projection retained in a session.
func (a Account) Identity() Identity {
	return Identity{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		Department: a.Department,
	}
}

// Identity is the subset of an account a caller may hold after
// authenticating. It never carries credential material.
type Identity struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// IsAdmin reports whether the identity may receive a session.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsZero reports whether the identity is the anonymous placeholder.
func (i Identity) IsZero() bool {
	return i == Identity{}
}
