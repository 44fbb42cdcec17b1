package cost

import "context"

// Repository is the cost ledger. Records are only ever appended.
type Repository interface {
	Append(ctx context.Context, rec *Record) error
	List(ctx context.Context) ([]Record, error)
	ListByName(ctx context.Context, name string) ([]Record, error)
}
