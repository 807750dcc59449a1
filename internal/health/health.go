// Package health serves grpc.health.v1.Health backed by periodic dependency
// checks.
package health

import (
	"context"
	"sort"
	"time"

	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PingFunc checks that a dependency is reachable.
type PingFunc func(ctx context.Context) error

// Checker pings dependencies and publishes their status on a health server.
// The overall status ("") is SERVING only when every dependency answers.
type Checker struct {
	server  *health.Server
	checks  map[string]PingFunc
	names   []string
	timeout time.Duration
}

// NewChecker creates a Checker. Every dependency starts as NOT_SERVING until
// the first Check.
func NewChecker(server *health.Server, timeout time.Duration, checks map[string]PingFunc) *Checker {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	c := &Checker{
		server:  server,
		checks:  checks,
		names:   names,
		timeout: timeout,
	}

	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, name := range names {
		server.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return c
}

// Check pings every dependency once and updates the published statuses.
// It reports whether all dependencies are healthy.
func (c *Checker) Check(ctx context.Context) bool {
	healthy := true
	for _, name := range c.names {
		pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.checks[name](pingCtx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			logger.Log.Warnw("health check failed", "dependency", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			healthy = false
		}
		c.server.SetServingStatus(name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", overall)
	return healthy
}

// Run checks immediately and then every interval until ctx is done.
// On return every status is switched to NOT_SERVING.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ticker.C:
			c.Check(ctx)
		case <-ctx.Done():
			c.server.Shutdown()
			return
		}
	}
}

// NewServer returns a gRPC server exposing the health service.
func NewServer(hs *health.Server, opts ...grpc.ServerOption) *grpc.Server {
	srv := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}
