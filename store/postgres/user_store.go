// Package postgres is the durable account store backend.
package postgres

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/store"
)

const uniqueViolationCode = "23505"

type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore connects to the database and ensures the users table exists.
func NewUserStore(ctx context.Context, databaseURL string) (*UserStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ServerError, "Failed to create database pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ServerError, "Failed to connect to database")
	}

	s := &UserStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *UserStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return errors.Wrap(err, errors.ServerError, "Failed to prepare users table")
	}
	return nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*store.UserRecord, error) {
	return s.queryOne(ctx,
		`SELECT id, email, name, role, password_hash, created_at FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*store.UserRecord, error) {
	return s.queryOne(ctx,
		`SELECT id, email, name, role, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (s *UserStore) queryOne(ctx context.Context, query string, arg any) (*store.UserRecord, error) {
	var record store.UserRecord
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&record.ID, &record.Email, &record.Name, &record.Role, &record.PasswordHash, &record.CreatedAt)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("User", arg)
		}
		return nil, errors.Wrap(err, errors.ServerError, "Failed to query user")
	}
	return &record, nil
}

func (s *UserStore) Create(ctx context.Context, record *store.UserRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID,
		strings.ToLower(strings.TrimSpace(record.Email)),
		record.Name,
		record.Role,
		record.PasswordHash,
		record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errors.Conflict("Email already registered", "an account with this email exists")
		}
		return errors.Wrap(err, errors.ServerError, "Failed to create user")
	}
	return nil
}

func (s *UserStore) List(ctx context.Context) ([]*store.UserRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, name, role, password_hash, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, errors.ServerError, "Failed to list users")
	}
	defer rows.Close()

	var records []*store.UserRecord
	for rows.Next() {
		var record store.UserRecord
		if err := rows.Scan(&record.ID, &record.Email, &record.Name, &record.Role, &record.PasswordHash, &record.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ServerError, "Failed to scan user row")
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ServerError, "Failed to iterate user rows")
	}
	return records, nil
}

func (s *UserStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *UserStore) Close() {
	s.pool.Close()
}
