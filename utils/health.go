package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthCheck pings one external dependency.
type HealthCheck func(ctx context.Context) error

func MongoCheck(client *mongo.Client) HealthCheck {
	return func(ctx context.Context) error { return client.Ping(ctx, nil) }
}

func RedisCheck(client *redis.Client) HealthCheck {
	return func(ctx context.Context) error { return client.Ping(ctx).Err() }
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status       string          `json:"status"`
	Dependencies map[string]bool `json:"dependencies"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

// HealthMonitor keeps the latest result of its checks.
type HealthMonitor struct {
	checks  map[string]HealthCheck
	timeout time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]HealthCheck) *HealthMonitor {
	return &HealthMonitor{
		checks:  checks,
		timeout: 2 * time.Second,
		current: HealthStatus{Status: "ok", Dependencies: map[string]bool{}},
	}
}

// Status returns the latest snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	deps := make(map[string]bool, len(m.current.Dependencies))
	for k, v := range m.current.Dependencies {
		deps[k] = v
	}
	snapshot := m.current
	snapshot.Dependencies = deps
	return snapshot
}

// Check runs every check once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	deps := make(map[string]bool, len(m.checks))
	status := "ok"
	for name, check := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err := check(checkCtx)
		cancel()
		deps[name] = err == nil
		if err != nil {
			status = "degraded"
			GetLogger().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	next := HealthStatus{Status: status, Dependencies: deps, CheckedAt: time.Now()}
	m.mu.Lock()
	m.current = next
	m.mu.Unlock()
	return next
}

// Start checks immediately and then every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
