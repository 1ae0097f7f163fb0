package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RPCObserver receives the outcome of every unary call.
type RPCObserver interface {
	ObserveRPC(method, code string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRPC(string, string, time.Duration) {}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	s.logger.Debug(ctx, "rpc finished",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.observer.ObserveRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
	return resp, err
}

// sessionInterceptor lets UpdateProfile and ChangePassword through only when
// the requested user id is the user of the stored session. The snapshot is
// read through the service, so a signed snapshot must verify as well.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var userID string
	switch r := req.(type) {
	case *UpdateProfileRequest:
		userID = r.UserID
	case *ChangePasswordRequest:
		userID = r.UserID
	default:
		return handler(ctx, req)
	}

	cur, err := s.handler.svc.GetCurrentUser(ctx)
	if err != nil {
		return nil, s.handler.statusError(ctx, err)
	}

	if cur == nil || cur.ID != userID {
		s.logger.Warn(ctx, "rejected call without matching session", "method", info.FullMethod, "user_id", userID)
		return nil, status.Error(codes.Unauthenticated, "User not logged in")
	}

	return handler(ctx, req)
}
