package mockapi

import (
	"net/http"
	"sort"
	"time"

	"tableside/internal/domain/floor"
	"tableside/internal/domain/reservation"

	"github.com/gin-gonic/gin"
)

type reservationView struct {
	ID           int    `json:"id"`
	Table        int    `json:"table"`
	Datetime     string `json:"datetime"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	UserUsername string `json:"user_username"`
}

func (s *Server) viewReservationLocked(r *StoredReservation) reservationView {
	username := ""
	if a, ok := s.store.accounts[r.UserID]; ok {
		username = a.Username
	}
	return reservationView{
		ID:           r.ID,
		Table:        r.TableID,
		Datetime:     r.Datetime,
		Description:  r.Description,
		Status:       r.Status,
		UserUsername: username,
	}
}

func (s *Server) listReservations(c *gin.Context) {
	statusFilter := c.Query("status")

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]reservationView, 0)
	for _, r := range s.store.reservations {
		if statusFilter != "" && r.Status != statusFilter {
			continue
		}
		out = append(out, s.viewReservationLocked(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createReservation(c *gin.Context) {
	var req struct {
		Table       int    `json:"table"`
		Datetime    string `json:"datetime"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if req.Datetime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"datetime": []string{"This field is required."}})
		return
	}
	if _, err := time.Parse(time.RFC3339, req.Datetime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"datetime": []string{"Datetime has wrong format."}})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, exists := s.store.tables[req.Table]; !exists {
		c.JSON(http.StatusBadRequest, gin.H{"table": []string{"Table does not exist."}})
		return
	}
	r := &StoredReservation{
		ID:          s.store.seq("reservation"),
		TableID:     req.Table,
		Datetime:    req.Datetime,
		Description: req.Description,
		Status:      string(reservation.StatusPending),
		UserID:      currentUserID(c),
	}
	s.store.reservations[r.ID] = r
	c.JSON(http.StatusCreated, s.viewReservationLocked(r))
}

// approveReservation resolves a pending request and marks the table reserved;
// resolving an already-resolved reservation is rejected.
func (s *Server) approveReservation(c *gin.Context) {
	s.resolveReservation(c, reservation.StatusApproved)
}

func (s *Server) rejectReservation(c *gin.Context) {
	s.resolveReservation(c, reservation.StatusRejected)
}

func (s *Server) resolveReservation(c *gin.Context, to reservation.Status) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	r, exists := s.store.reservations[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if r.Status != string(reservation.StatusPending) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Reservation already resolved."})
		return
	}
	r.Status = string(to)
	if to == reservation.StatusApproved {
		if t, found := s.store.tables[r.TableID]; found {
			t.Status = floor.StatusReserved
		}
	}
	c.JSON(http.StatusOK, s.viewReservationLocked(r))
}
