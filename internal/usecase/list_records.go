package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

// ListRecords returns stored records in one of the supported orderings.
type ListRecords struct {
	store ports.RecordStore
}

func NewListRecords(store ports.RecordStore) *ListRecords {
	return &ListRecords{store: store}
}

// Execute applies the HTTP ordering: the field comparator, reversed for desc,
// with ties left in insertion order.
func (uc *ListRecords) Execute(ctx context.Context, field domain.SortField, order domain.SortOrder) ([]domain.Record, error) {
	c, ok := domain.APIComparator(field, order)
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", field)
	}
	return uc.sorted(ctx, c)
}

// Display applies the command-line ordering. reverse flips the whole
// comparator, tie-breaks included.
func (uc *ListRecords) Display(ctx context.Context, field domain.SortField, reverse bool) ([]domain.Record, error) {
	c, ok := domain.DisplayComparator(field)
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", field)
	}
	if reverse {
		c = domain.Reverse(c)
	}
	return uc.sorted(ctx, c)
}

// All returns records in insertion order.
func (uc *ListRecords) All(ctx context.Context) ([]domain.Record, error) {
	return uc.store.List(ctx)
}

func (uc *ListRecords) sorted(ctx context.Context, c domain.Comparator) ([]domain.Record, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortStable(records, c), nil
}
