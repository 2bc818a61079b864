package services

import (
	"context"
	"errors"
	"fmt"

	"airline/internal/domain"
	"airline/internal/repositories"
)

// DefaultFetchLimit bounds every list read when no limit is configured.
const DefaultFetchLimit = 1000

func fetchLimit(n int) int {
	if n <= 0 {
		return DefaultFetchLimit
	}
	return n
}

// lookupErr turns a repository miss into a NotFoundError carrying msg and
// anything else into an InternalError.
func lookupErr(err error, resource, msg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return domain.NotFoundError{Resource: resource, Msg: msg, Err: err}
	}
	return storeErr(err)
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return domain.InternalError{Msg: "storage error", Err: err}
}

// renumberQueue rewrites positions of a flight's queue to 0..n-1 keeping the
// current order. Items already in place are not rewritten.
func renumberQueue(ctx context.Context, store repositories.Store, flightID string, limit int) error {
	remaining, err := store.Boarding.ListByFlight(ctx, flightID, fetchLimit(limit))
	if err != nil {
		return storeErr(err)
	}
	for idx, item := range remaining {
		if item.Position == idx {
			continue
		}
		if err := store.Boarding.SetPosition(ctx, item, idx); err != nil {
			return storeErr(fmt.Errorf("renumber %s: %w", item.TicketID, err))
		}
	}
	return nil
}
