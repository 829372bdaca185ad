package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tableside/internal/api"
	"tableside/internal/domain/reservation"
	"tableside/internal/pkg/errs"
)

type ReservationSubmitter interface {
	CreateReservation(ctx context.Context, req api.CreateReservationRequest) (reservation.Reservation, error)
}

// Form holds the client-side reservation request form for one table pick.
// The submitted table may still show as available afterwards: approval is
// what ultimately changes its status, not submission.
type Form struct {
	gateway  ReservationSubmitter
	registry *Registry
	logger   *slog.Logger
	location *time.Location

	mu          sync.Mutex
	when        string
	description string
}

func NewForm(gateway ReservationSubmitter, registry *Registry, loc *time.Location, logger *slog.Logger) *Form {
	if loc == nil {
		loc = time.Local
	}
	return &Form{
		gateway:  gateway,
		registry: registry,
		logger:   logger,
		location: loc,
	}
}

func (f *Form) SetWhen(whenLocal string) {
	f.mu.Lock()
	f.when = whenLocal
	f.mu.Unlock()
}

func (f *Form) SetDescription(desc string) {
	f.mu.Lock()
	f.description = desc
	f.mu.Unlock()
}

func (f *Form) When() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.when
}

func (f *Form) Description() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.description
}

// Reserve submits a pending reservation for the table. An empty date-time is
// rejected before any network call is issued. The local picker value is
// converted to an absolute UTC instant; on success the form is cleared and
// the table registry refreshed.
func (f *Form) Reserve(ctx context.Context, tableID int) error {
	f.mu.Lock()
	when := f.when
	desc := f.description
	f.mu.Unlock()

	instant, err := reservation.ParseLocal(when, f.location)
	if err != nil {
		if errs.Is(err, errs.ErrMissingDatetime) {
			return err
		}
		return errs.Mark(errs.Wrap(err, "invalid reservation datetime"), errs.ErrValidation)
	}

	_, err = f.gateway.CreateReservation(ctx, api.CreateReservationRequest{
		Table:       tableID,
		Datetime:    reservation.Instant(instant),
		Description: desc,
	})
	if err != nil {
		return errs.Wrap(err, "reservation submit failed")
	}

	f.mu.Lock()
	f.when = ""
	f.description = ""
	f.mu.Unlock()

	if err := f.registry.Refresh(ctx); err != nil {
		f.logger.Debug("post-reservation table refresh failed", "error", err)
	}
	return nil
}
