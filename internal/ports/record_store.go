package ports

import (
	"context"

	"github.com/aalvaropc/recordsort/internal/domain"
)

// RecordStore holds accumulated records in insertion order.
// Implementations must be safe for concurrent use.
type RecordStore interface {
	Append(ctx context.Context, records ...domain.Record) error
	List(ctx context.Context) ([]domain.Record, error)
}
