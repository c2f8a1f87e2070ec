package module

import "context"

type Repository interface {
	List(ctx context.Context) ([]Module, error)
}
