//go:build unit

package poll_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tableside/internal/poll"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsImmediatelyThenOnInterval(t *testing.T) {
	var calls atomic.Int64
	s := poll.NewScheduler("test", 20*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, slog.New(slog.DiscardHandler))

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond,
		"first refresh fires without waiting for the interval")
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestSchedulerStopHaltsPolling(t *testing.T) {
	var calls atomic.Int64
	s := poll.NewScheduler("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, slog.New(slog.DiscardHandler))

	s.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()

	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no refreshes after Stop returns")

	// idempotent
	s.Stop()
}

func TestSchedulerStartIsIdempotentWhileRunning(t *testing.T) {
	var calls atomic.Int64
	block := make(chan struct{})
	s := poll.NewScheduler("test", time.Hour, func(context.Context) error {
		calls.Add(1)
		<-block
		return nil
	}, slog.New(slog.DiscardHandler))

	s.Start(context.Background())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load(), "second Start must not spawn another loop")

	close(block)
	s.Stop()
}

func TestSchedulerSwallowsRefreshErrors(t *testing.T) {
	var calls atomic.Int64
	s := poll.NewScheduler("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errs.New("backend down")
	}, slog.New(slog.DiscardHandler))

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond,
		"polling continues despite refresh failures")
}

func TestGroupReportsFirstError(t *testing.T) {
	boom := errs.New("boom")
	var ran atomic.Int64

	group := poll.Group(
		func(context.Context) error { ran.Add(1); return nil },
		func(context.Context) error { ran.Add(1); return boom },
		func(context.Context) error { ran.Add(1); return nil },
	)

	err := group(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(3), ran.Load(), "all members run even when one fails")
}

func TestGroupNilErrorWhenAllSucceed(t *testing.T) {
	group := poll.Group(
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	)
	assert.NoError(t, group(context.Background()))
}
