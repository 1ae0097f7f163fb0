// Package grpc exposes the account service over gRPC and provides a client
// that implements services.AuthService against a running daemon.
//
// Messages are JSON-encoded; see jsonCodec.
package grpc

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"
)

type GRPCServer struct {
	address  string
	logger   logging.Logger
	observer RPCObserver
	handler  *accountHandler
	srv      *grpc.Server
}

// NewGRPCServer builds a server for svc listening on address. A nil observer
// disables request metrics.
func NewGRPCServer(address string, l logging.Logger, svc services.AuthService, obs RPCObserver) *GRPCServer {
	if obs == nil {
		obs = nopObserver{}
	}

	s := &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		observer: obs,
	}
	s.handler = &accountHandler{svc: svc, logger: s.logger}

	s.srv = grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.loggingInterceptor, s.sessionInterceptor),
	)

	RegisterAccountServiceServer(s.srv, s.handler)

	return s
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// Serve reports ErrServerStopped when ctx was cancelled before it started.
	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
