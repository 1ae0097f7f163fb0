package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"
)

// accountHandler serves AccountService on top of a local AuthService.
type accountHandler struct {
	svc    services.AuthService
	logger logging.Logger
}

var _ AccountServiceServer = (*accountHandler)(nil)

func (h *accountHandler) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	u, err := h.svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &UserResponse{User: u}, nil
}

func (h *accountHandler) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &UserResponse{User: u}, nil
}

func (h *accountHandler) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.svc.Logout(ctx); err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *accountHandler) GetCurrentUser(ctx context.Context, _ *emptypb.Empty) (*UserResponse, error) {
	u, err := h.svc.GetCurrentUser(ctx)
	if err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &UserResponse{User: u}, nil
}

func (h *accountHandler) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*UserResponse, error) {
	u, err := h.svc.UpdateProfile(ctx, req.UserID, models.ProfileUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &UserResponse{User: u}, nil
}

func (h *accountHandler) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*emptypb.Empty, error) {
	if err := h.svc.ChangePassword(ctx, req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, h.statusError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// statusError converts a service failure into a gRPC status and attaches the
// failure kind and operation as trailers so the client can rebuild it.
func (h *accountHandler) statusError(ctx context.Context, err error) error {
	var e *services.Error
	if !errors.As(err, &e) {
		h.logger.Error(ctx, "unexpected service error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	if e.Kind == services.KindPersistenceFailure {
		h.logger.Error(ctx, "storage failure", "op", string(e.Op), "error", e.Err)
	}

	md := metadata.Pairs(common.ErrorKindTrailer, string(e.Kind), common.ErrorOpTrailer, string(e.Op))
	if terr := grpc.SetTrailer(ctx, md); terr != nil {
		h.logger.Warn(ctx, "failed to set error trailer", "error", terr)
	}

	return status.Error(codeForKind(e.Kind), e.Message())
}

func codeForKind(k services.Kind) codes.Code {
	switch k {
	case services.KindDuplicateEmail, services.KindEmailTaken:
		return codes.AlreadyExists
	case services.KindInvalidCredentials:
		return codes.Unauthenticated
	case services.KindUserNotFound:
		return codes.NotFound
	case services.KindIncorrectPassword:
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}
