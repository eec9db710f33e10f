package repository

import "context"

// Tx is the base interface for transactional operations. Composite game
// operations take an explicit transaction rather than ambient session
// state; either all sub-mutations commit or none do.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
