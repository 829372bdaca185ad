package api

import (
	"context"
	"fmt"

	"tableside/internal/domain/order"
)

// CreateOrder opens an empty order for a table. The create response is not
// trusted to include full nested detail; callers re-fetch by id.
func (c *Client) CreateOrder(ctx context.Context, tableID int) (order.Order, error) {
	var out order.Order
	err := c.post(ctx, "/orders/", map[string]any{"table": tableID, "items": []any{}}, &out)
	return out, err
}

func (c *Client) Order(ctx context.Context, id int) (order.Order, error) {
	var out order.Order
	err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), &out)
	return out, err
}

// AddOrderItem posts an incremental add; the response is the entire updated
// order.
func (c *Client) AddOrderItem(ctx context.Context, orderID, menuItemID, quantity int) (order.Order, error) {
	var out order.Order
	err := c.post(ctx, fmt.Sprintf("/orders/%d/add_item/", orderID), map[string]int{
		"menu_item": menuItemID,
		"quantity":  quantity,
	}, &out)
	return out, err
}

func (c *Client) SetOrderItemQuantity(ctx context.Context, orderID, orderItemID, quantity int) (order.Order, error) {
	var out order.Order
	err := c.post(ctx, fmt.Sprintf("/orders/%d/set_item_qty/", orderID), map[string]int{
		"order_item_id": orderItemID,
		"quantity":      quantity,
	}, &out)
	return out, err
}

func (c *Client) RemoveOrderItem(ctx context.Context, orderID, orderItemID int) (order.Order, error) {
	var out order.Order
	err := c.post(ctx, fmt.Sprintf("/orders/%d/remove_item/", orderID), map[string]int{
		"order_item_id": orderItemID,
	}, &out)
	return out, err
}

// PayOrder finalizes the order and detaches it from the table summary.
func (c *Client) PayOrder(ctx context.Context, orderID int) error {
	return c.post(ctx, fmt.Sprintf("/orders/%d/pay/", orderID), nil, nil)
}
