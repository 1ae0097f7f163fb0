package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
)

// Client implements services.AuthService by calling a remote AccountService.
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

var _ services.AuthService = (*Client)(nil)

// Dial creates a client for the daemon at addr. Each call is bounded by
// timeout when it is positive. Extra options are appended to the defaults.
func Dial(addr string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	defaults := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	}

	conn, err := grpc.NewClient(addr, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}

	return &Client{conn: conn, timeout: timeout}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var trailer metadata.MD
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out, grpc.Trailer(&trailer)); err != nil {
		return mapError(err, trailer)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	resp := &UserResponse{}
	err := c.invoke(ctx, methodRegister, &RegisterRequest{Name: name, Email: email, Password: password}, resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	resp := &UserResponse{}
	if err := c.invoke(ctx, methodLogin, &LoginRequest{Email: email, Password: password}, resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.invoke(ctx, methodLogout, &emptypb.Empty{}, &emptypb.Empty{})
}

func (c *Client) GetCurrentUser(ctx context.Context) (*models.PublicUser, error) {
	resp := &UserResponse{}
	if err := c.invoke(ctx, methodGetCurrentUser, &emptypb.Empty{}, resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.PublicUser, error) {
	req := &UpdateProfileRequest{UserID: userID, Name: update.Name, Email: update.Email}
	resp := &UserResponse{}
	if err := c.invoke(ctx, methodUpdateProfile, req, resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	req := &ChangePasswordRequest{UserID: userID, CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.invoke(ctx, methodChangePassword, req, &emptypb.Empty{})
}

// mapError rebuilds a *services.Error from the error trailers when the
// server sent them and maps transport failures otherwise.
func mapError(err error, trailer metadata.MD) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	if kinds := trailer.Get(common.ErrorKindTrailer); len(kinds) > 0 {
		e := &services.Error{Kind: services.Kind(kinds[0])}
		if ops := trailer.Get(common.ErrorOpTrailer); len(ops) > 0 {
			e.Op = services.Op(ops[0])
		}
		if e.Kind == services.KindPersistenceFailure {
			e.Err = errors.New(st.Message())
		}
		return e
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", common.ErrNotLoggedIn, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
