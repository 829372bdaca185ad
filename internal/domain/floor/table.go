package floor

import (
	"errors"
	"slices"
)

var ErrInvalidStatus = errors.New("invalid table status")

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusOccupied  Status = "occupied"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusReserved, StatusOccupied:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

type Shape string

const (
	ShapeSquare Shape = "square"
	ShapeRect   Shape = "rect"
	ShapeRound  Shape = "round"
)

// OrderSummary is the embedded active-order digest the backend attaches to
// each table row. Absent when the table has no open order.
type OrderSummary struct {
	OrderID    int     `json:"order_id"`
	ItemsCount int     `json:"items_count"`
	Total      float64 `json:"total"`
}

type Table struct {
	ID          int           `json:"id"`
	Number      int           `json:"number"`
	Chairs      int           `json:"chairs"`
	Status      Status        `json:"status"`
	Left        int           `json:"left"`
	Top         int           `json:"top"`
	ActiveOrder *OrderSummary `json:"active_order,omitempty"`
}

// Shape picks the rendered table shape from seat capacity: seven or more
// chairs round, up to four square, anything between a rectangle.
func (t Table) Shape() Shape {
	switch {
	case t.Chairs >= 7:
		return ShapeRound
	case t.Chairs <= 4:
		return ShapeSquare
	default:
		return ShapeRect
	}
}

func (t Table) IsAvailable() bool {
	return t.Status == StatusAvailable
}

// Normalize de-duplicates by ID keeping the first occurrence and sorts the
// result ascending by display number. Polling can return transient duplicates
// from concatenated paginated fetches, so every fetched collection passes
// through here before it is exposed.
func Normalize(tables []Table) []Table {
	seen := make(map[int]struct{}, len(tables))
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b Table) int {
		return a.Number - b.Number
	})
	return out
}
