//go:build unit

package board_test

import (
	"context"
	"log/slog"
	"testing"

	"tableside/internal/board"
	"tableside/internal/domain/reservation"
	"tableside/internal/pkg/errs"
	"tableside/tests/common/builder"
	boardmock "tableside/tests/mock/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQueueApproveReloadsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := boardmock.NewMockReservationGateway(ctrl)
	queue := board.NewQueue(gateway, slog.New(slog.DiscardHandler))

	first := builder.NewReservationBuilder().WithID(1).Build()
	second := builder.NewReservationBuilder().WithID(2).Build()

	gomock.InOrder(
		gateway.EXPECT().PendingReservations(gomock.Any()).
			Return([]reservation.Reservation{first, second}, nil),
		gateway.EXPECT().ApproveReservation(gomock.Any(), 1).Return(nil),
		gateway.EXPECT().PendingReservations(gomock.Any()).
			Return([]reservation.Reservation{second}, nil),
	)

	require.NoError(t, queue.LoadPending(context.Background()))
	require.Len(t, queue.Pending(), 2)

	require.NoError(t, queue.Approve(context.Background(), 1))

	pending := queue.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].ID)
}

func TestQueueRejectFailureKeepsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := boardmock.NewMockReservationGateway(ctrl)
	queue := board.NewQueue(gateway, slog.New(slog.DiscardHandler))

	gomock.InOrder(
		gateway.EXPECT().PendingReservations(gomock.Any()).
			Return([]reservation.Reservation{builder.NewReservationBuilder().Build()}, nil),
		gateway.EXPECT().RejectReservation(gomock.Any(), 1).Return(errs.New("conflict")),
	)

	require.NoError(t, queue.LoadPending(context.Background()))
	require.Error(t, queue.Reject(context.Background(), 1))
	assert.Len(t, queue.Pending(), 1, "no local removal on failure")
}
