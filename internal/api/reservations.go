package api

import (
	"context"
	"fmt"

	"tableside/internal/domain/reservation"
)

// PendingReservations lists reservations still awaiting a manager decision.
func (c *Client) PendingReservations(ctx context.Context) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	err := c.get(ctx, "/reservations/?status=pending", &out)
	return out, err
}

type CreateReservationRequest struct {
	Table       int                 `json:"table"`
	Datetime    reservation.Instant `json:"datetime"`
	Description string              `json:"description"`
}

// CreateReservation submits a pending reservation; Datetime must already be
// an absolute UTC instant.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (reservation.Reservation, error) {
	var out reservation.Reservation
	err := c.post(ctx, "/reservations/", req, &out)
	return out, err
}

func (c *Client) ApproveReservation(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/reservations/%d/approve/", id), nil, nil)
}

func (c *Client) RejectReservation(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/reservations/%d/reject/", id), nil, nil)
}
