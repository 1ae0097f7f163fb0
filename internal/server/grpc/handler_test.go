package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
)

func TestCodeForKind(t *testing.T) {
	tests := []struct {
		kind services.Kind
		want codes.Code
	}{
		{services.KindDuplicateEmail, codes.AlreadyExists},
		{services.KindEmailTaken, codes.AlreadyExists},
		{services.KindInvalidCredentials, codes.Unauthenticated},
		{services.KindUserNotFound, codes.NotFound},
		{services.KindIncorrectPassword, codes.PermissionDenied},
		{services.KindPersistenceFailure, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, codeForKind(tt.kind))
		})
	}
}

func TestMapError_WithoutTrailers(t *testing.T) {
	err := mapError(status.Error(codes.DeadlineExceeded, "slow"), nil)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	err = mapError(status.Error(codes.Unauthenticated, "User not logged in"), nil)
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)

	err = mapError(status.Error(codes.Unimplemented, "nope"), nil)
	assert.Contains(t, err.Error(), "rpc error")
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestMapError_RebuildsServiceError(t *testing.T) {
	md := metadata.Pairs(common.ErrorKindTrailer, string(services.KindUserNotFound), common.ErrorOpTrailer, string(services.OpUpdateProfile))

	err := mapError(status.Error(codes.NotFound, "User not found"), md)

	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.ErrorIs(t, err, &services.Error{Kind: services.KindUserNotFound, Op: services.OpUpdateProfile})
	assert.Equal(t, "User not found", services.Message(err))
}
