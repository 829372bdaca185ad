package mockapi

import (
	"net/http"
	"sort"

	"tableside/internal/domain/floor"
	"tableside/internal/domain/order"

	"github.com/gin-gonic/gin"
)

type orderView struct {
	ID    int               `json:"id"`
	Table int               `json:"table"`
	Items []order.OrderItem `json:"orderitem_set"`
	Total float64           `json:"total"`
}

func viewOrder(o *StoredOrder) orderView {
	items := make([]order.OrderItem, len(o.Items))
	copy(items, o.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return orderView{
		ID:    o.ID,
		Table: o.TableID,
		Items: items,
		Total: orderTotal(o),
	}
}

func (s *Server) createOrder(c *gin.Context) {
	var req struct {
		Table int   `json:"table"`
		Items []any `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, exists := s.store.tables[req.Table]
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Table does not exist."})
		return
	}
	if _, active := s.store.activeOrderLocked(req.Table); active {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Table already has an open order."})
		return
	}
	o := &StoredOrder{
		ID:      s.store.seq("order"),
		TableID: req.Table,
	}
	s.store.orders[o.ID] = o
	t.Status = floor.StatusOccupied
	c.JSON(http.StatusCreated, viewOrder(o))
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	o, exists := s.store.orders[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	c.JSON(http.StatusOK, viewOrder(o))
}

// openOrder resolves the order for a mutation; paid orders are closed and no
// longer accept changes. Callers hold the store lock.
func (s *Server) openOrderLocked(c *gin.Context, id int) (*StoredOrder, bool) {
	o, exists := s.store.orders[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return nil, false
	}
	if o.Paid {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Order is already paid."})
		return nil, false
	}
	return o, true
}

func (s *Server) addOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		MenuItem int `json:"menu_item"`
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	o, ok := s.openOrderLocked(c, id)
	if !ok {
		return
	}
	m, exists := s.store.menu[req.MenuItem]
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"menu_item": []string{"Invalid menu item."}})
		return
	}

	// repeat adds of the same item merge into the existing line
	merged := false
	for i := range o.Items {
		if o.Items[i].MenuItemID == m.ID {
			o.Items[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		o.Items = append(o.Items, order.OrderItem{
			ID:             s.store.seq("orderitem"),
			MenuItemID:     m.ID,
			MenuItemDetail: *m,
			Quantity:       req.Quantity,
		})
	}
	c.JSON(http.StatusOK, viewOrder(o))
}

func (s *Server) setOrderItemQty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		OrderItemID int `json:"order_item_id"`
		Quantity    int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	o, ok := s.openOrderLocked(c, id)
	if !ok {
		return
	}
	for i := range o.Items {
		if o.Items[i].ID == req.OrderItemID {
			if req.Quantity < 1 {
				req.Quantity = 1
			}
			o.Items[i].Quantity = req.Quantity
			c.JSON(http.StatusOK, viewOrder(o))
			return
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"order_item_id": []string{"No such order item."}})
}

func (s *Server) removeOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		OrderItemID int `json:"order_item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	o, ok := s.openOrderLocked(c, id)
	if !ok {
		return
	}
	kept := o.Items[:0]
	removed := false
	for _, it := range o.Items {
		if it.ID == req.OrderItemID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	o.Items = kept
	if !removed {
		c.JSON(http.StatusBadRequest, gin.H{"order_item_id": []string{"No such order item."}})
		return
	}
	c.JSON(http.StatusOK, viewOrder(o))
}

// payOrder closes the order and releases the table back to available.
func (s *Server) payOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	o, ok := s.openOrderLocked(c, id)
	if !ok {
		return
	}
	o.Paid = true
	if t, exists := s.store.tables[o.TableID]; exists {
		t.Status = floor.StatusAvailable
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Order paid."})
}
