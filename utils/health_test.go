package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealthMonitorCheck(t *testing.T) {
	m := NewHealthMonitor(map[string]HealthCheck{
		"mongo": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	status := m.Check(context.Background())
	require.Equal(t, "degraded", status.Status)
	require.Equal(t, map[string]bool{"mongo": true, "redis": false}, status.Dependencies)
	require.False(t, status.CheckedAt.IsZero())

	snapshot := m.Status()
	snapshot.Dependencies["mongo"] = false
	require.True(t, m.Status().Dependencies["mongo"])
}

func TestHealthMonitorStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewHealthMonitor(map[string]HealthCheck{
		"mongo": func(context.Context) error { return nil },
	})
	m.Start(ctx, time.Hour)

	status := m.Status()
	require.Equal(t, "ok", status.Status)
	require.True(t, status.Dependencies["mongo"])
}
