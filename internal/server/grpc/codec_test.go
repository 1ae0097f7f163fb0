package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestJSONCodec_Name(t *testing.T) {
	assert.Equal(t, "json", jsonCodec{}.Name())
}

func TestJSONCodec_PlainStruct(t *testing.T) {
	c := jsonCodec{}

	data, err := c.Marshal(&UpdateProfileRequest{UserID: "u1", Name: strPtr("Ann")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1","name":"Ann"}`, string(data))

	var got UpdateProfileRequest
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, "u1", got.UserID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Ann", *got.Name)
	assert.Nil(t, got.Email)
}

func TestJSONCodec_ProtoMessage(t *testing.T) {
	c := jsonCodec{}

	data, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	require.NoError(t, c.Unmarshal(data, &emptypb.Empty{}))
	require.NoError(t, c.Unmarshal(nil, &emptypb.Empty{}))
}

func TestJSONCodec_InvalidInput(t *testing.T) {
	c := jsonCodec{}
	assert.Error(t, c.Unmarshal([]byte("{"), &LoginRequest{}))
	assert.Error(t, c.Unmarshal([]byte(`{"x":`), &emptypb.Empty{}))
}
