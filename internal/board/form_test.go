//go:build unit

package board_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tableside/internal/api"
	"tableside/internal/board"
	"tableside/internal/domain/reservation"
	"tableside/internal/pkg/errs"
	"tableside/tests/common/builder"
	boardmock "tableside/tests/mock/board"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FormTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *boardmock.MockReservationSubmitter
	source  *boardmock.MockTableSource
	form    *board.Form
}

func (s *FormTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = boardmock.NewMockReservationSubmitter(s.ctrl)
	s.source = boardmock.NewMockTableSource(s.ctrl)
	logger := slog.New(slog.DiscardHandler)
	registry := board.NewRegistry(s.source, logger)
	s.form = board.NewForm(s.gateway, registry, time.UTC, logger)
}

func (s *FormTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormTestSuite))
}

func (s *FormTestSuite) TestReserveWithoutDatetimeNeverHitsNetwork() {
	s.form.SetDescription("birthday")

	err := s.form.Reserve(context.Background(), 1)
	s.ErrorIs(err, errs.ErrMissingDatetime)
}

func (s *FormTestSuite) TestReserveSubmitsUTCInstantAndClearsForm() {
	s.form.SetWhen("2026-09-12T19:30")
	s.form.SetDescription("window seat")

	s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.CreateReservationRequest) (reservation.Reservation, error) {
			s.Equal(4, req.Table)
			s.Equal("window seat", req.Description)
			s.True(req.Datetime.Time().Equal(time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)))
			return builder.NewReservationBuilder().WithTable(4).Build(), nil
		}).Times(1)
	s.source.EXPECT().FetchTables(gomock.Any()).Return(nil, nil).Times(1)

	s.Require().NoError(s.form.Reserve(context.Background(), 4))

	s.Empty(s.form.When())
	s.Empty(s.form.Description())
}

func (s *FormTestSuite) TestReserveFailureKeepsFormValues() {
	s.form.SetWhen("2026-09-12T19:30")
	s.form.SetDescription("window seat")

	s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(builder.NewReservationBuilder().Build(), errs.New("table just taken")).Times(1)

	s.Require().Error(s.form.Reserve(context.Background(), 4))

	s.Equal("2026-09-12T19:30", s.form.When())
	s.Equal("window seat", s.form.Description())
}

func (s *FormTestSuite) TestReserveRejectsMalformedDatetime() {
	s.form.SetWhen("tonight at eight")

	err := s.form.Reserve(context.Background(), 1)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrValidation)
}
