//go:build unit || e2e

package builder

import (
	"time"

	"tableside/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID           int
	Table        int
	Datetime     time.Time
	Description  string
	Status       string
	UserUsername string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           1,
		Table:        1,
		Datetime:     time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
		Description:  "window seat please",
		Status:       "pending",
		UserUsername: "guest",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() reservation.Reservation {
	return reservation.Reservation{
		ID:           b.ID,
		Table:        b.Table,
		Datetime:     b.Datetime,
		Description:  b.Description,
		Status:       reservation.Status(b.Status),
		UserUsername: b.UserUsername,
	}
}

func (b *ReservationBuilder) WithID(id int) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithTable(tableID int) *ReservationBuilder {
	b.Table = tableID
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}
