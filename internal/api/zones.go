package api

import (
	"context"
	"fmt"

	"tableside/internal/domain/floor"
)

func (c *Client) Zones(ctx context.Context) ([]floor.Zone, error) {
	var out []floor.Zone
	err := c.get(ctx, "/zones/", &out)
	return out, err
}

type CreateZoneRequest struct {
	Type   floor.ZoneType `json:"type"`
	Top    int            `json:"top"`
	Left   int            `json:"left"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
}

func (c *Client) CreateZone(ctx context.Context, req CreateZoneRequest) (floor.Zone, error) {
	var out floor.Zone
	err := c.post(ctx, "/zones/", req, &out)
	return out, err
}

// UpdateZoneRequest carries a partial geometry patch; nil fields are left
// untouched by the backend.
type UpdateZoneRequest struct {
	Top    *int `json:"top,omitempty"`
	Left   *int `json:"left,omitempty"`
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

func (c *Client) UpdateZone(ctx context.Context, id int, req UpdateZoneRequest) (floor.Zone, error) {
	var out floor.Zone
	err := c.patch(ctx, fmt.Sprintf("/zones/%d/", id), req, &out)
	return out, err
}

func (c *Client) DeleteZone(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/zones/%d/", id))
}
