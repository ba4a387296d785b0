package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscout/pkg/scheduler/mocks"
)

func TestScheduler_RunsImmediatelyOnStart(t *testing.T) {
	updated := make(chan bool, 1)
	updater := &mocks.UpdaterMock{
		UpdateFunc: func(ctx context.Context, force bool) bool {
			select {
			case updated <- force:
			default:
			}
			return false
		},
	}

	s := NewScheduler(updater, Config{UpdateInterval: time.Hour})
	s.Start(context.Background())
	defer s.Stop()

	select {
	case force := <-updated:
		assert.False(t, force, "scheduled passes are not forced")
	case <-time.After(time.Second):
		t.Fatal("no update pass after start")
	}
}

func TestScheduler_PeriodicUpdates(t *testing.T) {
	updater := &mocks.UpdaterMock{
		UpdateFunc: func(ctx context.Context, force bool) bool { return true },
	}

	s := NewScheduler(updater, Config{UpdateInterval: 30 * time.Millisecond})
	s.Start(context.Background())

	require.Eventually(t, func() bool {
		return len(updater.UpdateCalls()) >= 3
	}, time.Second, 10*time.Millisecond, "initial pass plus ticker passes")

	s.Stop()
	after := len(updater.UpdateCalls())
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after, len(updater.UpdateCalls()), "no passes after stop")
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(&mocks.UpdaterMock{}, Config{})
	s.Stop() // no panic
}

func TestScheduler_UpdateNow(t *testing.T) {
	updater := &mocks.UpdaterMock{
		UpdateFunc: func(ctx context.Context, force bool) bool { return true },
	}

	s := NewScheduler(updater, Config{UpdateInterval: time.Hour})
	s.UpdateNow(context.Background())

	calls := updater.UpdateCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Force, "manual trigger forces the pass")
}

func TestScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler(&mocks.UpdaterMock{}, Config{})
	assert.Equal(t, 30*time.Minute, s.updateInterval)
}
