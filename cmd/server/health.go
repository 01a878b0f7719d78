package main

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/questkeep/hero-api/internal/redis"
)

const healthCheckInterval = 10 * time.Second

// updateHealthStatus pings the store and reflects the result in the health
// service. A process whose store is unreachable must not report serving.
func updateHealthStatus(ctx context.Context, client redis.Client, hs *health.Server) {
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis ping failed, marking not serving", "error", err)
		hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// watchHealth re-checks store reachability until ctx is done
func watchHealth(ctx context.Context, client redis.Client, hs *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateHealthStatus(ctx, client, hs)
		}
	}
}
