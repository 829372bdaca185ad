//go:build unit || e2e

package builder

import (
	"tableside/internal/domain/order"

	"github.com/jinzhu/copier"
)

type MenuItemBuilder struct {
	ID       int
	Code     string
	Name     string
	Price    float64
	ItemType string
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:       1,
		Code:     "esp",
		Name:     "Espresso",
		Price:    2.5,
		ItemType: "drink",
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

func (b *MenuItemBuilder) Build() order.MenuItem {
	return order.MenuItem{
		ID:       b.ID,
		Code:     b.Code,
		Name:     b.Name,
		Price:    b.Price,
		ItemType: b.ItemType,
	}
}

func (b *MenuItemBuilder) WithID(id int) *MenuItemBuilder {
	b.ID = id
	return b
}

func (b *MenuItemBuilder) WithCode(code string) *MenuItemBuilder {
	b.Code = code
	return b
}

func (b *MenuItemBuilder) WithPrice(price float64) *MenuItemBuilder {
	b.Price = price
	return b
}

type OrderBuilder struct {
	ID    int
	Table int
	Items []order.OrderItem
	Total float64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:    10,
		Table: 1,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Clone deep-copies the builder so a derived order can diverge without
// mutating the shared item slice.
func (b *OrderBuilder) Clone() *OrderBuilder {
	var out OrderBuilder
	if err := copier.CopyWithOption(&out, b, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &out
}

func (b *OrderBuilder) Build() order.Order {
	return order.Order{
		ID:    b.ID,
		Table: b.Table,
		Items: b.Items,
		Total: b.Total,
	}
}

func (b *OrderBuilder) WithID(id int) *OrderBuilder {
	b.ID = id
	return b
}

func (b *OrderBuilder) WithTable(tableID int) *OrderBuilder {
	b.Table = tableID
	return b
}

func (b *OrderBuilder) WithItem(itemID int, menuItem order.MenuItem, quantity int) *OrderBuilder {
	b.Items = append(b.Items, order.OrderItem{
		ID:             itemID,
		MenuItemID:     menuItem.ID,
		MenuItemDetail: menuItem,
		Quantity:       quantity,
	})
	b.Total += menuItem.Price * float64(quantity)
	return b
}
