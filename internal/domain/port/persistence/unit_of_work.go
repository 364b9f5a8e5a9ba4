package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating multi-statement
// database transactions across repositories. The purchase core is its
// only consumer: the whole debit-plus-upserts sequence runs over one
// transaction-bound connection.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context.
	// Everything obtained from the returned context shares one pinned
	// connection until Commit or Rollback.
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context. Calling
	// it after a successful Commit is a no-op.
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetOwnedItemRepository returns an owned-item repository bound to the current transaction
	GetOwnedItemRepository(ctx context.Context) OwnedItemRepository
}
