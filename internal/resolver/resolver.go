// Package resolver dereferences ordered ID lists into records.
//
// Entities refer to each other through ID lists rather than queries, so every
// multi-hop lookup is a walk over such a list. Two policies exist:
//
//   - Resolve skips IDs that no longer point at a record (dangling references)
//     and returns whatever did resolve.
//   - ResolveStrict stops at the first dangling reference.
package resolver

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/storage"
)

// DanglingError reports an ID that did not resolve in strict mode.
type DanglingError struct {
	ID string
}

func (e *DanglingError) Error() string {
	return fmt.Sprintf("resolver: dangling reference %s", e.ID)
}

// Resolve returns the records for ids in order, skipping any ID that is absent
// from coll. Only backend failures produce an error.
func Resolve[T any](ctx context.Context, coll storage.Collection[T], ids []string) ([]T, error) {
	records := make([]T, 0, len(ids))
	for _, id := range ids {
		record, ok, err := coll.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// ResolveStrict returns the records for ids in order. The first absent ID
// aborts the walk with a *DanglingError.
func ResolveStrict[T any](ctx context.Context, coll storage.Collection[T], ids []string) ([]T, error) {
	records := make([]T, 0, len(ids))
	for _, id := range ids {
		record, ok, err := coll.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &DanglingError{ID: id}
		}
		records = append(records, record)
	}
	return records, nil
}
