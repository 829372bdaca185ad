package api

import (
	"context"
	"fmt"

	"tableside/internal/domain/floor"
)

// Tables lists tables without active-order summaries (client dashboard).
func (c *Client) Tables(ctx context.Context) ([]floor.Table, error) {
	var out []floor.Table
	err := c.get(ctx, "/tables/", &out)
	return out, err
}

// TableStatuses lists tables with embedded active-order summaries (staff
// dashboards).
func (c *Client) TableStatuses(ctx context.Context) ([]floor.Table, error) {
	var out []floor.Table
	err := c.get(ctx, "/tables/status/", &out)
	return out, err
}

type CreateTableRequest struct {
	Number int          `json:"number"`
	Chairs int          `json:"chairs"`
	Status floor.Status `json:"status"`
	Top    int          `json:"top"`
	Left   int          `json:"left"`
}

func (c *Client) CreateTable(ctx context.Context, req CreateTableRequest) (floor.Table, error) {
	var out floor.Table
	err := c.post(ctx, "/tables/", req, &out)
	return out, err
}

// MoveTable persists a table position immediately on drop.
func (c *Client) MoveTable(ctx context.Context, id, left, top int) (floor.Table, error) {
	var out floor.Table
	err := c.patch(ctx, fmt.Sprintf("/tables/%d/", id), map[string]int{"left": left, "top": top}, &out)
	return out, err
}

func (c *Client) DeleteTable(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/tables/%d/", id))
}

// SeatTable transitions a reserved table to occupied when guests arrive.
func (c *Client) SeatTable(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/tables/%d/seat/", id), nil, nil)
}
