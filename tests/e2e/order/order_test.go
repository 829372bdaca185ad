//go:build e2e

package order_test

import (
	"testing"

	"tableside/internal/board"
	"tableside/internal/domain/floor"
	"tableside/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type orderSuite struct {
	e2e.SharedSuite

	registry *board.Registry
	catalog  *board.Catalog
	session  *board.Session
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupTest() {
	waiter := s.LoginAs("waiter")
	s.registry = board.NewRegistry(board.TableSourceFunc(waiter.TableStatuses), s.Logger)
	s.catalog = board.NewCatalog(waiter, s.Logger)
	s.session = board.NewSession(waiter, s.registry, s.Logger)

	ctx := s.T().Context()
	s.Require().NoError(s.registry.Refresh(ctx))
	s.Require().NoError(s.catalog.Refresh(ctx))
}

// Walks a table through a full service: open, start an order, build it up,
// correct it, and settle the bill. Totals always come back from the server.
func (s *orderSuite) TestOrderLifecycle() {
	ctx := s.T().Context()

	table, found := s.registry.Find(1)
	s.Require().True(found)
	s.Require().Nil(table.ActiveOrder)

	s.Require().NoError(s.session.Open(ctx, table))
	s.Equal(board.SessionCreating, s.session.State())

	s.Require().NoError(s.session.Start(ctx))
	s.Equal(board.SessionActive, s.session.State())

	// table flips to occupied and carries the order summary
	table, _ = s.registry.Find(1)
	s.Equal(floor.StatusOccupied, table.Status)
	s.Require().NotNil(table.ActiveOrder)

	esp, ok := s.catalog.FindByCode("esp")
	s.Require().True(ok)
	marg, ok := s.catalog.FindByCode("marg")
	s.Require().True(ok)

	s.Require().NoError(s.session.AddItem(ctx, esp.ID, 2))
	got, _ := s.session.Order()
	s.InDelta(2*esp.Price, got.Total, 0.001)

	// adding the same item again merges into one line
	s.Require().NoError(s.session.AddItem(ctx, esp.ID, 1))
	got, _ = s.session.Order()
	s.Require().Len(got.Items, 1)
	s.Equal(3, got.Items[0].Quantity)

	s.Require().NoError(s.session.AddItem(ctx, marg.ID, 1))
	got, _ = s.session.Order()
	s.Require().Len(got.Items, 2)
	s.InDelta(3*esp.Price+marg.Price, got.Total, 0.001)

	// a decrement below one is clamped, never removed
	espLine := got.Items[0]
	s.Require().NoError(s.session.SetQuantity(ctx, espLine.ID, 0))
	got, _ = s.session.Order()
	line, found2 := got.Item(espLine.ID)
	s.Require().True(found2)
	s.Equal(1, line.Quantity)

	margLine := got.Items[1]
	s.Require().NoError(s.session.RemoveItem(ctx, margLine.ID))
	got, _ = s.session.Order()
	s.Require().Len(got.Items, 1)
	s.InDelta(esp.Price, got.Total, 0.001)

	// the table summary tracks the latest server total
	table, _ = s.registry.Find(1)
	s.Require().NotNil(table.ActiveOrder)
	s.InDelta(esp.Price, table.ActiveOrder.Total, 0.001)

	s.Require().NoError(s.session.Pay(ctx))
	s.Equal(board.SessionIdle, s.session.State())

	table, _ = s.registry.Find(1)
	s.Equal(floor.StatusAvailable, table.Status)
	s.Nil(table.ActiveOrder)
}

func (s *orderSuite) TestReopeningTableLoadsExistingOrder() {
	ctx := s.T().Context()

	table, found := s.registry.Find(2)
	s.Require().True(found)
	s.Require().NoError(s.session.Open(ctx, table))
	s.Require().NoError(s.session.Start(ctx))

	cap, ok := s.catalog.FindByCode("cap")
	s.Require().True(ok)
	s.Require().NoError(s.session.AddItem(ctx, cap.ID, 2))

	// another shift picks the table back up from the summary
	s.session.Close()
	table, _ = s.registry.Find(2)
	s.Require().NotNil(table.ActiveOrder)

	s.Require().NoError(s.session.Open(ctx, table))
	s.Equal(board.SessionActive, s.session.State())

	got, _ := s.session.Order()
	s.Require().Len(got.Items, 1)
	s.Equal(2, got.Items[0].Quantity)

	s.Require().NoError(s.session.Pay(ctx))
}
