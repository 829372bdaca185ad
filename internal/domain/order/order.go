package order

import "strings"

type MenuItem struct {
	ID       int     `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ItemType string  `json:"item_type"`
}

// NormalizeCode canonicalizes a staff-entered lookup code for matching.
func NormalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (m MenuItem) MatchesCode(query string) bool {
	return strings.Contains(NormalizeCode(m.Code), NormalizeCode(query))
}

// OrderItem is one order line. MenuItemDetail is a denormalized snapshot
// taken at order time; Quantity never drops below one.
type OrderItem struct {
	ID             int      `json:"id"`
	MenuItemID     int      `json:"menu_item"`
	MenuItemDetail MenuItem `json:"menu_item_detail"`
	Quantity       int      `json:"quantity"`
}

// Order is the full active order for a table. Total is server-computed and
// authoritative; the client never derives it locally.
type Order struct {
	ID    int         `json:"id"`
	Table int         `json:"table"`
	Items []OrderItem `json:"orderitem_set"`
	Total float64     `json:"total"`
}

func (o Order) Item(orderItemID int) (OrderItem, bool) {
	for _, it := range o.Items {
		if it.ID == orderItemID {
			return it, true
		}
	}
	return OrderItem{}, false
}

// ClampQuantity enforces the minimum line quantity before a set-quantity
// request is issued; decrementing below one is prevented client-side.
func ClampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}
