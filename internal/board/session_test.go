//go:build unit

package board_test

import (
	"context"
	"log/slog"
	"testing"

	"tableside/internal/board"
	"tableside/internal/domain/floor"
	"tableside/internal/pkg/errs"
	"tableside/tests/common/builder"
	boardmock "tableside/tests/mock/board"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	gateway  *boardmock.MockOrderGateway
	source   *boardmock.MockTableSource
	registry *board.Registry
	session  *board.Session
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = boardmock.NewMockOrderGateway(s.ctrl)
	s.source = boardmock.NewMockTableSource(s.ctrl)
	logger := slog.New(slog.DiscardHandler)
	s.registry = board.NewRegistry(s.source, logger)
	s.session = board.NewSession(s.gateway, s.registry, logger)
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) expectTableRefresh() {
	s.source.EXPECT().FetchTables(gomock.Any()).Return(nil, nil).Times(1)
}

func (s *SessionTestSuite) TestOpenWithoutActiveOrder() {
	table := builder.NewTableBuilder().WithID(3).Build()

	s.Require().NoError(s.session.Open(context.Background(), table))
	s.Equal(board.SessionCreating, s.session.State())

	_, ok := s.session.Order()
	s.False(ok)
}

func (s *SessionTestSuite) TestOpenWithActiveOrderLoadsDetail() {
	full := builder.NewOrderBuilder().WithID(40).
		WithItem(1, builder.NewMenuItemBuilder().Build(), 2).
		Build()
	table := builder.NewTableBuilder().WithID(3).AsOccupied(40, 1, full.Total).Build()

	s.gateway.EXPECT().Order(gomock.Any(), 40).Return(full, nil).Times(1)

	s.Require().NoError(s.session.Open(context.Background(), table))
	s.Equal(board.SessionActive, s.session.State())

	got, ok := s.session.Order()
	s.Require().True(ok)
	s.Equal(40, got.ID)
}

func (s *SessionTestSuite) TestOpenFetchFailureLeavesStateUnchanged() {
	table := builder.NewTableBuilder().WithID(3).AsOccupied(40, 1, 5).Build()
	s.gateway.EXPECT().Order(gomock.Any(), 40).Return(builder.NewOrderBuilder().Build(), errs.New("boom")).Times(1)

	s.Require().Error(s.session.Open(context.Background(), table))
	s.Equal(board.SessionIdle, s.session.State())
}

func (s *SessionTestSuite) TestStartCreatesThenReloadsByID() {
	table := builder.NewTableBuilder().WithID(3).Build()
	s.Require().NoError(s.session.Open(context.Background(), table))

	created := builder.NewOrderBuilder().WithID(50).WithTable(3)
	full := created.Clone().WithItem(1, builder.NewMenuItemBuilder().Build(), 1).Build()

	gomock.InOrder(
		s.gateway.EXPECT().CreateOrder(gomock.Any(), 3).Return(created.Build(), nil),
		s.gateway.EXPECT().Order(gomock.Any(), 50).Return(full, nil),
	)
	s.expectTableRefresh()

	s.Require().NoError(s.session.Start(context.Background()))
	s.Equal(board.SessionActive, s.session.State())

	got, ok := s.session.Order()
	s.Require().True(ok)
	s.Equal(full.Total, got.Total)
}

func (s *SessionTestSuite) TestStartWithoutSelection() {
	err := s.session.Start(context.Background())
	s.ErrorIs(err, errs.ErrNoTableSelected)
}

func (s *SessionTestSuite) TestAddItemReplacesOrderWithServerResponse() {
	s.openActive(40)

	esp := builder.NewMenuItemBuilder().WithID(7).WithPrice(2.5).Build()
	updated := builder.NewOrderBuilder().WithID(40).WithItem(1, esp, 2).Build()
	s.gateway.EXPECT().AddOrderItem(gomock.Any(), 40, 7, 2).Return(updated, nil).Times(1)
	s.expectTableRefresh()

	s.Require().NoError(s.session.AddItem(context.Background(), 7, 2))

	got, _ := s.session.Order()
	s.Equal(updated.Total, got.Total)
	s.Len(got.Items, 1)
}

func (s *SessionTestSuite) TestSetQuantityClampsBelowOne() {
	s.openActive(40)

	updated := builder.NewOrderBuilder().WithID(40).Build()
	// a decrement below one is never sent as-is
	s.gateway.EXPECT().SetOrderItemQuantity(gomock.Any(), 40, 9, 1).Return(updated, nil).Times(1)
	s.expectTableRefresh()

	s.Require().NoError(s.session.SetQuantity(context.Background(), 9, 0))
}

func (s *SessionTestSuite) TestMutationsRequireActiveOrder() {
	table := builder.NewTableBuilder().WithID(3).Build()
	s.Require().NoError(s.session.Open(context.Background(), table))

	s.ErrorIs(s.session.AddItem(context.Background(), 1, 1), errs.ErrNoActiveOrder)
	s.ErrorIs(s.session.SetQuantity(context.Background(), 1, 1), errs.ErrNoActiveOrder)
	s.ErrorIs(s.session.RemoveItem(context.Background(), 1), errs.ErrNoActiveOrder)
	s.ErrorIs(s.session.Pay(context.Background()), errs.ErrNoActiveOrder)
}

func (s *SessionTestSuite) TestPayClosesSession() {
	s.openActive(40)

	s.gateway.EXPECT().PayOrder(gomock.Any(), 40).Return(nil).Times(1)
	s.expectTableRefresh()

	s.Require().NoError(s.session.Pay(context.Background()))
	s.Equal(board.SessionIdle, s.session.State())
}

func (s *SessionTestSuite) TestPayFailureKeepsOrder() {
	s.openActive(40)

	s.gateway.EXPECT().PayOrder(gomock.Any(), 40).Return(errs.New("declined")).Times(1)

	s.Require().Error(s.session.Pay(context.Background()))
	s.Equal(board.SessionActive, s.session.State())
}

func (s *SessionTestSuite) TestSeatGuestsUpdatesSelection() {
	table := builder.NewTableBuilder().WithID(3).AsReserved().Build()
	s.Require().NoError(s.session.Open(context.Background(), table))

	s.gateway.EXPECT().SeatTable(gomock.Any(), 3).Return(nil).Times(1)
	s.expectTableRefresh()

	s.Require().NoError(s.session.SeatGuests(context.Background(), 3))

	got, ok := s.session.Table()
	s.Require().True(ok)
	s.Equal(floor.StatusOccupied, got.Status)
}

// openActive drives the session into the active state on order orderID.
func (s *SessionTestSuite) openActive(orderID int) {
	full := builder.NewOrderBuilder().WithID(orderID).Build()
	table := builder.NewTableBuilder().WithID(3).AsOccupied(orderID, 0, 0).Build()
	s.gateway.EXPECT().Order(gomock.Any(), orderID).Return(full, nil).Times(1)
	s.Require().NoError(s.session.Open(context.Background(), table))
}
