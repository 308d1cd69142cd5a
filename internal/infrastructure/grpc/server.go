package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
}

// NewServer registers the health service under the service name, plus reflection
func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(log)),
		grpc.ChainStreamInterceptor(logger.NewGrpcStreamServerInterceptor(log)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		config: cfg,
		logger: log,
		server: server,
		health: healthServer,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.GRPC.Host, s.config.Server.GRPC.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on an existing listener
func (s *Server) Serve(listener net.Listener) error {
	s.listener = listener
	s.health.SetServingStatus(s.config.Service.Name, healthpb.HealthCheckResponse_SERVING)

	s.logger.Info("Starting gRPC server", zap.String("address", listener.Addr().String()))

	return s.server.Serve(listener)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.server.Stop()
	}
	return nil
}
