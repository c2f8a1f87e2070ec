package patient

import "context"

type Repository interface {
	ListSummaries(ctx context.Context) ([]Summary, error)
	Find(ctx context.Context, id int64) (Patient, error)
	// Create persists the record and returns it with the assigned id.
	Create(ctx context.Context, p Patient) (Patient, error)
	// Update writes the full row; the caller supplies merged values.
	Update(ctx context.Context, p Patient) error
}
