package board

import (
	"context"
	"log/slog"
	"sync"

	"tableside/internal/domain/floor"
	"tableside/internal/domain/order"
	"tableside/internal/pkg/errs"
)

type SessionState string

const (
	// no table selected
	SessionIdle SessionState = "idle"
	// table selected, no active order yet
	SessionCreating SessionState = "creating"
	// table selected with an open order loaded
	SessionActive SessionState = "active"
)

type OrderGateway interface {
	CreateOrder(ctx context.Context, tableID int) (order.Order, error)
	Order(ctx context.Context, id int) (order.Order, error)
	AddOrderItem(ctx context.Context, orderID, menuItemID, quantity int) (order.Order, error)
	SetOrderItemQuantity(ctx context.Context, orderID, orderItemID, quantity int) (order.Order, error)
	RemoveOrderItem(ctx context.Context, orderID, orderItemID int) (order.Order, error)
	PayOrder(ctx context.Context, orderID int) error
	SeatTable(ctx context.Context, tableID int) error
}

// Session is the active order attached to the selected table. Every mutation
// is serialized through the backend: the server response replaces the local
// order wholesale, and a table refresh follows because order totals are
// embedded in table summaries. On any failure the local state is left
// unchanged for the caller to surface a message; there is no automatic retry.
type Session struct {
	gateway  OrderGateway
	registry *Registry
	logger   *slog.Logger

	mu    sync.Mutex
	state SessionState
	table floor.Table
	order order.Order
}

func NewSession(gateway OrderGateway, registry *Registry, logger *slog.Logger) *Session {
	return &Session{
		gateway:  gateway,
		registry: registry,
		logger:   logger,
		state:    SessionIdle,
	}
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Table returns the current selection.
func (s *Session) Table() (floor.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table, s.state != SessionIdle
}

// Order returns the loaded active order.
func (s *Session) Order() (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order, s.state == SessionActive
}

// Open selects a table. When the table summary advertises an active order the
// full detail is fetched and the session becomes active; otherwise it enters
// the creating state.
func (s *Session) Open(ctx context.Context, t floor.Table) error {
	if t.ActiveOrder == nil {
		s.mu.Lock()
		s.state = SessionCreating
		s.table = t
		s.order = order.Order{}
		s.mu.Unlock()
		return nil
	}

	full, err := s.gateway.Order(ctx, t.ActiveOrder.OrderID)
	if err != nil {
		return errs.Wrap(err, "failed to load active order")
	}
	s.mu.Lock()
	s.state = SessionActive
	s.table = t
	s.order = full
	s.mu.Unlock()
	return nil
}

// Close clears the selection.
func (s *Session) Close() {
	s.mu.Lock()
	s.state = SessionIdle
	s.table = floor.Table{}
	s.order = order.Order{}
	s.mu.Unlock()
}

// Start creates an empty order for the selected table. The create response is
// not trusted to carry full nested detail, so the order is re-fetched by id
// before the session transitions to active.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state == SessionIdle {
		s.mu.Unlock()
		return errs.ErrNoTableSelected
	}
	tableID := s.table.ID
	s.mu.Unlock()

	created, err := s.gateway.CreateOrder(ctx, tableID)
	if err != nil {
		return errs.Wrap(err, "failed to create order")
	}
	full, err := s.gateway.Order(ctx, created.ID)
	if err != nil {
		return errs.Wrap(err, "failed to load created order")
	}

	s.mu.Lock()
	s.state = SessionActive
	s.order = full
	s.mu.Unlock()

	s.refreshTables(ctx)
	return nil
}

// AddItem posts an incremental add and replaces local state with the server's
// full updated order.
func (s *Session) AddItem(ctx context.Context, menuItemID, quantity int) error {
	orderID, err := s.activeOrderID()
	if err != nil {
		return err
	}
	updated, err := s.gateway.AddOrderItem(ctx, orderID, menuItemID, quantity)
	if err != nil {
		return errs.Wrap(err, "failed to add item")
	}
	s.replaceOrder(updated)
	s.refreshTables(ctx)
	return nil
}

// SetQuantity clamps the requested quantity to a minimum of one before the
// call is issued; the server is never asked to validate a decrement below it.
func (s *Session) SetQuantity(ctx context.Context, orderItemID, quantity int) error {
	orderID, err := s.activeOrderID()
	if err != nil {
		return err
	}
	updated, err := s.gateway.SetOrderItemQuantity(ctx, orderID, orderItemID, order.ClampQuantity(quantity))
	if err != nil {
		return errs.Wrap(err, "failed to set quantity")
	}
	s.replaceOrder(updated)
	s.refreshTables(ctx)
	return nil
}

func (s *Session) RemoveItem(ctx context.Context, orderItemID int) error {
	orderID, err := s.activeOrderID()
	if err != nil {
		return err
	}
	updated, err := s.gateway.RemoveOrderItem(ctx, orderID, orderItemID)
	if err != nil {
		return errs.Wrap(err, "failed to remove item")
	}
	s.replaceOrder(updated)
	s.refreshTables(ctx)
	return nil
}

// Pay finalizes the order and closes the session; a table refresh follows so
// the table reverts to an unoccupied summary.
func (s *Session) Pay(ctx context.Context) error {
	orderID, err := s.activeOrderID()
	if err != nil {
		return err
	}
	if err := s.gateway.PayOrder(ctx, orderID); err != nil {
		return errs.Wrap(err, "failed to pay order")
	}
	s.Close()
	s.refreshTables(ctx)
	return nil
}

// SeatGuests transitions a reserved table to occupied, separate from order
// creation. The registry refresh is awaited before the selection reflects the
// status change.
func (s *Session) SeatGuests(ctx context.Context, tableID int) error {
	if err := s.gateway.SeatTable(ctx, tableID); err != nil {
		return errs.Wrap(err, "failed to seat guests")
	}
	s.refreshTables(ctx)

	s.mu.Lock()
	if s.state != SessionIdle && s.table.ID == tableID {
		s.table.Status = floor.StatusOccupied
	}
	s.mu.Unlock()
	return nil
}

func (s *Session) activeOrderID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SessionActive {
		return 0, errs.ErrNoActiveOrder
	}
	return s.order.ID, nil
}

func (s *Session) replaceOrder(o order.Order) {
	s.mu.Lock()
	s.order = o
	s.mu.Unlock()
}

// refreshTables is awaited after every mutation; a refresh failure keeps
// stale registry state silently since another poll will follow shortly.
func (s *Session) refreshTables(ctx context.Context) {
	if err := s.registry.Refresh(ctx); err != nil {
		s.logger.Debug("post-mutation table refresh failed", "error", err)
	}
}
