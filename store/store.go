// Package store defines the account repository contract shared by the
// memory and postgres backends.
package store

import (
	"context"

	"github.com/wanderai/wanderai-backend/types"
)

// UserRecord is the persisted form of an account, including the credential
// hash that never leaves the store layer.
type UserRecord struct {
	types.User
	PasswordHash string
}

// UserStore is the account repository. Implementations must be safe for
// concurrent use.
type UserStore interface {
	// GetByEmail returns the record for an email, or a NOT_FOUND error.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	// GetByID returns the record for an ID, or a NOT_FOUND error.
	GetByID(ctx context.Context, id string) (*UserRecord, error)
	// Create persists a new account. A duplicate email yields a CONFLICT error.
	Create(ctx context.Context, record *UserRecord) error
	// List returns all accounts ordered by creation time.
	List(ctx context.Context) ([]*UserRecord, error)
	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}
