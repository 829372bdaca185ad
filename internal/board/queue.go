package board

import (
	"context"
	"log/slog"
	"sync"

	"tableside/internal/domain/reservation"
	"tableside/internal/pkg/errs"
)

type ReservationGateway interface {
	PendingReservations(ctx context.Context) ([]reservation.Reservation, error)
	ApproveReservation(ctx context.Context, id int) error
	RejectReservation(ctx context.Context, id int) error
}

// Queue is the manager-facing pending-reservation list. Resolved entries
// disappear on reload because the fetch is always status-filtered; there is
// no local removal logic.
type Queue struct {
	gateway ReservationGateway
	logger  *slog.Logger

	mu      sync.RWMutex
	pending []reservation.Reservation
}

func NewQueue(gateway ReservationGateway, logger *slog.Logger) *Queue {
	return &Queue{
		gateway: gateway,
		logger:  logger,
	}
}

func (q *Queue) LoadPending(ctx context.Context) error {
	fetched, err := q.gateway.PendingReservations(ctx)
	if err != nil {
		return errs.Wrap(err, "pending reservations fetch failed")
	}
	q.mu.Lock()
	q.pending = fetched
	q.mu.Unlock()
	return nil
}

func (q *Queue) Pending() []reservation.Reservation {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]reservation.Reservation, len(q.pending))
	copy(out, q.pending)
	return out
}

// Approve resolves a reservation and reloads the pending list. Approving an
// already-resolved id is a backend-defined no-op; state is not pre-checked.
func (q *Queue) Approve(ctx context.Context, id int) error {
	if err := q.gateway.ApproveReservation(ctx, id); err != nil {
		return errs.Wrap(err, "approve failed")
	}
	return q.LoadPending(ctx)
}

func (q *Queue) Reject(ctx context.Context, id int) error {
	if err := q.gateway.RejectReservation(ctx, id); err != nil {
		return errs.Wrap(err, "reject failed")
	}
	return q.LoadPending(ctx)
}
