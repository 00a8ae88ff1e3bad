package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/storage"
	"github.com/motionmatrix/factory-portal/internal/storage/memory"
)

// Ensure Store satisfies the storage.AccountStore interface at compile time.
var _ storage.AccountStore = (*Store)(nil)

// Store provides Postgres-backed account lookups. Unlike the fixture
// store, credentials live as bcrypt hashes; plaintext never touches disk.
type Store struct {
	pool *pgxpool.Pool
}

// NewAccountStore connects, runs migrations, and seeds the stock records.
func NewAccountStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.seed(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'worker',
			department TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			joined_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_unique_idx ON accounts (email);`,
		`CREATE INDEX IF NOT EXISTS accounts_role_idx ON accounts (role);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// seed inserts the stock fixture accounts with hashed credentials so a
// fresh database behaves like the in-memory store. Existing rows win.
func (s *Store) seed(ctx context.Context) error {
	const query = `
		INSERT INTO accounts (name, email, password_hash, phone, role, department, gender, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO NOTHING;`

	for _, acct := range memory.SeedAccounts() {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		_, err = s.pool.Exec(ctx, query,
			acct.Name, acct.Email, string(hash), acct.Phone, acct.Role, acct.Department, acct.Gender, acct.Status)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", acct.Email, err)
		}
	}
	return nil
}

// Authenticate fetches by email and verifies the bcrypt hash. Both the
// missing-row and wrong-password paths collapse into ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	acct, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Identity{}, storage.ErrInvalidCredentials
		}
		return models.Identity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return models.Identity{}, storage.ErrInvalidCredentials
	}
	return acct.Identity(), nil
}

// FindByEmail fetches an account row by exact email.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	const query = `
	SELECT id, name, email, password_hash, phone, role, department, gender, status, created_at
	FROM accounts
	WHERE email = $1;`

	row := s.pool.QueryRow(ctx, query, email)
	return scanAccount(row)
}

// ListByRole returns accounts filtered by role in insertion order; an
// empty role returns every account.
func (s *Store) ListByRole(ctx context.Context, role string) ([]models.Account, error) {
	const filtered = `
	SELECT id, name, email, password_hash, phone, role, department, gender, status, created_at
	FROM accounts WHERE role = $1 ORDER BY id;`
	const all = `
	SELECT id, name, email, password_hash, phone, role, department, gender, status, created_at
	FROM accounts ORDER BY id;`

	var rows pgx.Rows
	var err error
	if role == "" {
		rows, err = s.pool.Query(ctx, all)
	} else {
		rows, err = s.pool.Query(ctx, filtered, role)
	}
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, acct)
	}
	return out, rows.Err()
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var acct models.Account
	err := row.Scan(&acct.ID, &acct.Name, &acct.Email, &acct.PasswordHash, &acct.Phone,
		&acct.Role, &acct.Department, &acct.Gender, &acct.Status, &acct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrNotFound
		}
		return models.Account{}, err
	}
	return acct, nil
}
