package repository

import "context"

// AdminRepository covers maintenance operations that span every collection.
type AdminRepository interface {
	// ClearAll empties users, posts, and comments as a single transaction.
	ClearAll(ctx context.Context) error
}
