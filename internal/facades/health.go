package facades

import (
	"context"

	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade queries a grpc.health.v1.Health service.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// IsServing reports whether the service answers SERVING. The empty service
// name asks for the overall status.
func (f *HealthGRPCFacade) IsServing(ctx context.Context, service string) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return false, err
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
