//go:build unit || e2e

package builder

import (
	"tableside/internal/domain/floor"
)

type TableBuilder struct {
	ID          int
	Number      int
	Chairs      int
	Status      string
	Left        int
	Top         int
	ActiveOrder *floor.OrderSummary
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:     1,
		Number: 1,
		Chairs: 4,
		Status: "available",
		Left:   40,
		Top:    40,
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) Build() floor.Table {
	return floor.Table{
		ID:          b.ID,
		Number:      b.Number,
		Chairs:      b.Chairs,
		Status:      floor.Status(b.Status),
		Left:        b.Left,
		Top:         b.Top,
		ActiveOrder: b.ActiveOrder,
	}
}

// Fluent builder methods
func (b *TableBuilder) WithID(id int) *TableBuilder {
	b.ID = id
	return b
}

func (b *TableBuilder) WithNumber(number int) *TableBuilder {
	b.Number = number
	return b
}

func (b *TableBuilder) WithChairs(chairs int) *TableBuilder {
	b.Chairs = chairs
	return b
}

func (b *TableBuilder) WithStatus(status string) *TableBuilder {
	b.Status = status
	return b
}

func (b *TableBuilder) WithPosition(left, top int) *TableBuilder {
	b.Left = left
	b.Top = top
	return b
}

func (b *TableBuilder) AsReserved() *TableBuilder {
	b.Status = "reserved"
	return b
}

func (b *TableBuilder) AsOccupied(orderID int, itemsCount int, total float64) *TableBuilder {
	b.Status = "occupied"
	b.ActiveOrder = &floor.OrderSummary{
		OrderID:    orderID,
		ItemsCount: itemsCount,
		Total:      total,
	}
	return b
}
