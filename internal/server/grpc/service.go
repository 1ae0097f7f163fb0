package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully qualified name of the account service.
const ServiceName = "schoolplatform.accounts.v1.AccountService"

const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodLogout         = "Logout"
	methodGetCurrentUser = "GetCurrentUser"
	methodUpdateProfile  = "UpdateProfile"
	methodChangePassword = "ChangePassword"
)

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// AccountServiceServer is the server API of the account service.
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*UserResponse, error)
	Login(context.Context, *LoginRequest) (*UserResponse, error)
	Logout(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GetCurrentUser(context.Context, *emptypb.Empty) (*UserResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UserResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*emptypb.Empty, error)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
func unaryHandler[Req, Resp any](method string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AccountServiceDesc describes the account service for grpc.Server.
var AccountServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: methodRegister, Handler: unaryHandler(methodRegister, AccountServiceServer.Register)},
		{MethodName: methodLogin, Handler: unaryHandler(methodLogin, AccountServiceServer.Login)},
		{MethodName: methodLogout, Handler: unaryHandler(methodLogout, AccountServiceServer.Logout)},
		{MethodName: methodGetCurrentUser, Handler: unaryHandler(methodGetCurrentUser, AccountServiceServer.GetCurrentUser)},
		{MethodName: methodUpdateProfile, Handler: unaryHandler(methodUpdateProfile, AccountServiceServer.UpdateProfile)},
		{MethodName: methodChangePassword, Handler: unaryHandler(methodChangePassword, AccountServiceServer.ChangePassword)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "schoolplatform/accounts/v1/account_service",
}

// RegisterAccountServiceServer registers srv with s.
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountServiceDesc, srv)
}
