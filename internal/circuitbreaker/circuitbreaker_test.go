package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(failures, successes int, timeout time.Duration) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := New(Config{
		Name:             "test",
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
	})
	cb.now = clock.now
	return cb, clock
}

func fail() error    { return errBoom }
func succeed() error { return nil }

func TestNew_FillsDefaults(t *testing.T) {
	cb := New(Config{})
	def := DefaultConfig()

	assert.Equal(t, def.Name, cb.config.Name)
	assert.Equal(t, def.FailureThreshold, cb.config.FailureThreshold)
	assert.Equal(t, def.SuccessThreshold, cb.config.SuccessThreshold)
	assert.Equal(t, def.Timeout, cb.config.Timeout)
	assert.NotNil(t, cb.config.IsFailure)
	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(2, 1, time.Second)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errBoom)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, fail), errBoom)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
	assert.Equal(t, int64(1), cb.GetStats().Rejected)
}

func TestExecute_SuccessResetsFailureStreak(t *testing.T) {
	cb, _ := newTestBreaker(2, 1, time.Second)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	require.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.GetStats().FailureCount)
}

func TestExecute_HalfOpenTransitions(t *testing.T) {
	tests := []struct {
		name     string
		probes   []func() error
		expected State
	}{
		{
			name:     "closes after enough successful probes",
			probes:   []func() error{succeed, succeed},
			expected: StateClosed,
		},
		{
			name:     "stays half-open below success threshold",
			probes:   []func() error{succeed},
			expected: StateHalfOpen,
		},
		{
			name:     "reopens on a failed probe",
			probes:   []func() error{succeed, fail},
			expected: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(1, 2, time.Second)
			ctx := context.Background()

			_ = cb.Execute(ctx, fail)
			require.Equal(t, StateOpen, cb.State())

			clock.advance(time.Second)
			for _, probe := range tt.probes {
				_ = cb.Execute(ctx, probe)
			}

			assert.Equal(t, tt.expected, cb.State())
		})
	}
}

func TestExecute_StaysOpenDuringCooldown(t *testing.T) {
	cb, clock := newTestBreaker(1, 1, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	clock.advance(30 * time.Second)

	assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)
	assert.True(t, cb.IsOpen())
}

func TestExecute_ContextErrors(t *testing.T) {
	t.Run("cancelled context short-circuits without calling fn", func(t *testing.T) {
		cb, _ := newTestBreaker(1, 1, time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("cancellation returned by fn is not a failure", func(t *testing.T) {
		cb, _ := newTestBreaker(1, 1, time.Second)

		err := cb.Execute(context.Background(), func() error {
			return context.Canceled
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestExecute_CustomFailurePredicate(t *testing.T) {
	ignored := errors.New("not found")
	cb := New(Config{
		Name:             "test",
		FailureThreshold: 1,
		IsFailure:        func(err error) bool { return !errors.Is(err, ignored) },
	})

	err := cb.Execute(context.Background(), func() error { return ignored })

	assert.ErrorIs(t, err, ignored)
	assert.Equal(t, StateClosed, cb.State())
}

func TestGetStats(t *testing.T) {
	cb, clock := newTestBreaker(3, 1, time.Second)
	_ = cb.Execute(context.Background(), fail)

	stats := cb.GetStats()
	assert.Equal(t, "test", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, clock.t, stats.LastFailure)
	assert.True(t, stats.IsHealthy)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateClosed, "closed"},
		{StateOpen, "open"},
		{StateHalfOpen, "half-open"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}
