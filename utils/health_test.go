package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHealthMonitorCheck(t *testing.T) {
	m := NewHealthMonitor(map[string]Pinger{
		"mongo": PingFunc(func(context.Context) error { return nil }),
		"redis": PingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	status := m.Check(context.Background())
	require.True(t, status.Services["mongo"])
	require.False(t, status.Services["redis"])
	require.False(t, status.Healthy())
	require.Equal(t, status, m.Status())
}

func TestHealthMonitorNoTargetsIsHealthy(t *testing.T) {
	m := NewHealthMonitor(nil)
	require.True(t, m.Check(context.Background()).Healthy())
}

func TestHealthMonitorStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var pings atomic.Int32
	m := NewHealthMonitor(map[string]Pinger{
		"mongo": PingFunc(func(context.Context) error {
			pings.Add(1)
			return nil
		}),
	})

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool { return pings.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	// goleak waits for the ticker goroutine to observe cancellation.
}
