package user

import "context"

type Repository interface {
	Find(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	// UpdatePermissions replaces the whole permission mapping.
	// Returns ErrNotFound when no row was affected.
	UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error
}
