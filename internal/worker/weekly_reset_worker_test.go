package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
)

type mockResetter struct {
	mock.Mock
}

func (m *mockResetter) ResetWeeklyPoints(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type recordingBus struct {
	events []event.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return b.err
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func TestTimeUntilNextWeeklyReset(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"monday midnight waits a full week", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), 7 * 24 * time.Hour},
		{"monday noon", time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC), 6*24*time.Hour + 12*time.Hour},
		{"sunday one minute before", time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), time.Minute},
		{"wednesday", time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), 5 * 24 * time.Hour},
		{"non-utc input", time.Date(2024, 6, 10, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600)), time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextWeeklyReset(tt.now))
		})
	}
}

func TestWeeklyResetWorker_ExecuteReset(t *testing.T) {
	users := &mockResetter{}
	users.On("ResetWeeklyPoints", mock.Anything).Return(int64(7), nil)
	bus := &recordingBus{}

	n, err := NewWeeklyResetWorker(users, bus).ExecuteReset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	require.Len(t, bus.events, 1)
	assert.Equal(t, event.WeeklyResetComplete, bus.events[0].Type)
	payload, ok := bus.events[0].Payload.(domain.WeeklyResetPayload)
	require.True(t, ok)
	assert.Equal(t, int64(7), payload.UsersReset)
	users.AssertExpectations(t)
}

func TestWeeklyResetWorker_ExecuteResetFailure(t *testing.T) {
	users := &mockResetter{}
	users.On("ResetWeeklyPoints", mock.Anything).Return(int64(0), domain.ErrStorageTimeout)
	bus := &recordingBus{}

	_, err := NewWeeklyResetWorker(users, bus).ExecuteReset(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
	assert.Empty(t, bus.events, "no event without a reset")
}

func TestWeeklyResetWorker_PublishFailureIsNotFatal(t *testing.T) {
	users := &mockResetter{}
	users.On("ResetWeeklyPoints", mock.Anything).Return(int64(2), nil)

	n, err := NewWeeklyResetWorker(users, &recordingBus{err: errors.New("bus down")}).ExecuteReset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestWeeklyResetWorker_FiresAtWeekBoundary(t *testing.T) {
	users := &mockResetter{}
	done := make(chan struct{})
	users.On("ResetWeeklyPoints", mock.Anything).Return(int64(1), nil).Run(func(mock.Arguments) { close(done) }).Once()

	// 50ms before Monday 00:00; after firing the clock reads just past midnight
	start := time.Now()
	boundary := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	w := NewWeeklyResetWorker(users, nil).WithClock(func() time.Time {
		return boundary.Add(-50 * time.Millisecond).Add(time.Since(start))
	})
	w.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	require.NoError(t, w.Shutdown(ctx), "shutdown is idempotent")
}

func TestWeeklyResetWorker_ShutdownCancelsStandby(t *testing.T) {
	users := &mockResetter{}
	w := NewWeeklyResetWorker(users, nil).WithClock(func() time.Time {
		return time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	})
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	users.AssertNotCalled(t, "ResetWeeklyPoints", mock.Anything)
}
