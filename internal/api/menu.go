package api

import (
	"context"

	"tableside/internal/domain/order"
)

func (c *Client) MenuItems(ctx context.Context) ([]order.MenuItem, error) {
	var out []order.MenuItem
	err := c.get(ctx, "/menu-items/", &out)
	return out, err
}
