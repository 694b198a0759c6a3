package persistence

import (
	"context"
)

// UnitOfWork coordinates a database transaction across repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetKeyRepository returns a key repository bound to the current transaction
	GetKeyRepository(ctx context.Context) KeyRepository
}
