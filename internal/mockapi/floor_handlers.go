package mockapi

import (
	"net/http"
	"sort"
	"strconv"

	"tableside/internal/domain/floor"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return id, true
}

func (s *Server) listTables(c *gin.Context) {
	s.writeTables(c, false)
}

func (s *Server) listTableStatuses(c *gin.Context) {
	s.writeTables(c, true)
}

func (s *Server) writeTables(c *gin.Context, withOrders bool) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]floor.Table, 0, len(s.store.tables))
	for _, t := range s.store.tables {
		out = append(out, s.store.tableView(t, withOrders))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createTable(c *gin.Context) {
	var req struct {
		Number int    `json:"number"`
		Chairs int    `json:"chairs"`
		Status string `json:"status"`
		Top    int    `json:"top"`
		Left   int    `json:"left"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	status, err := floor.NewStatus(req.Status)
	if err != nil {
		status = floor.StatusAvailable
	}

	s.store.mu.Lock()
	t := &floor.Table{
		ID:     s.store.seq("table"),
		Number: req.Number,
		Chairs: req.Chairs,
		Status: status,
		Top:    req.Top,
		Left:   req.Left,
	}
	s.store.tables[t.ID] = t
	view := s.store.tableView(t, false)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, view)
}

func (s *Server) updateTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Number *int    `json:"number"`
		Chairs *int    `json:"chairs"`
		Status *string `json:"status"`
		Top    *int    `json:"top"`
		Left   *int    `json:"left"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, exists := s.store.tables[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if req.Number != nil {
		t.Number = *req.Number
	}
	if req.Chairs != nil {
		t.Chairs = *req.Chairs
	}
	if req.Status != nil {
		if status, err := floor.NewStatus(*req.Status); err == nil {
			t.Status = status
		}
	}
	if req.Top != nil {
		t.Top = *req.Top
	}
	if req.Left != nil {
		t.Left = *req.Left
	}
	c.JSON(http.StatusOK, s.store.tableView(t, false))
}

func (s *Server) deleteTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, exists := s.store.tables[id]; !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if _, active := s.store.activeOrderLocked(id); active {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cannot delete a table with an open order."})
		return
	}
	delete(s.store.tables, id)
	c.Status(http.StatusNoContent)
}

// seatTable transitions reserved to occupied when guests arrive.
func (s *Server) seatTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, exists := s.store.tables[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if t.Status != floor.StatusReserved {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Table is not reserved."})
		return
	}
	t.Status = floor.StatusOccupied
	c.JSON(http.StatusOK, s.store.tableView(t, true))
}

func (s *Server) listZones(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]floor.Zone, 0, len(s.store.zones))
	for _, z := range s.store.zones {
		out = append(out, *z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createZone(c *gin.Context) {
	var req struct {
		Type   string `json:"type"`
		Top    int    `json:"top"`
		Left   int    `json:"left"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	zoneType, err := floor.NewZoneType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"type": []string{"Not a valid choice."}})
		return
	}

	s.store.mu.Lock()
	z := &floor.Zone{
		ID:     s.store.seq("zone"),
		Type:   zoneType,
		Top:    req.Top,
		Left:   req.Left,
		Width:  req.Width,
		Height: req.Height,
	}
	s.store.zones[z.ID] = z
	view := *z
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, view)
}

func (s *Server) updateZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Top    *int `json:"top"`
		Left   *int `json:"left"`
		Width  *int `json:"width"`
		Height *int `json:"height"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	z, exists := s.store.zones[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if req.Top != nil {
		z.Top = *req.Top
	}
	if req.Left != nil {
		z.Left = *req.Left
	}
	if req.Width != nil {
		z.Width = *req.Width
	}
	if req.Height != nil {
		z.Height = *req.Height
	}
	c.JSON(http.StatusOK, *z)
}

func (s *Server) deleteZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, exists := s.store.zones[id]; !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	delete(s.store.zones, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) listMenuItems(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]any, 0, len(s.store.menu))
	ids := make([]int, 0, len(s.store.menu))
	for id := range s.store.menu {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		out = append(out, s.store.menu[id])
	}
	c.JSON(http.StatusOK, out)
}
