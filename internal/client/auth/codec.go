// Package auth encodes the session snapshot stored under the current-user
// key, either as plain JSON or as an HS256-signed token without expiry.
package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
	"github.com/dmitrijs2005/schoolplatform/internal/cryptox"
)

const signingKeyInfo = "schoolplatform session snapshot v1"

// SessionCodec converts the signed-in user to and from its stored form.
// Decode wraps common.ErrInvalidSnapshot for anything it cannot accept.
type SessionCodec interface {
	Encode(u models.PublicUser) ([]byte, error)
	Decode(b []byte) (*models.PublicUser, error)
}

// NewCodec returns a SignedCodec keyed from secret, or a JSONCodec when the
// secret is empty.
func NewCodec(secret string) (SessionCodec, error) {
	if secret == "" {
		return JSONCodec{}, nil
	}
	return NewSignedCodec([]byte(secret))
}

// JSONCodec stores the public user view as is.
type JSONCodec struct{}

func (JSONCodec) Encode(u models.PublicUser) ([]byte, error) {
	return json.Marshal(u)
}

func (JSONCodec) Decode(b []byte) (*models.PublicUser, error) {
	var u models.PublicUser
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: missing user id", common.ErrInvalidSnapshot)
	}
	return &u, nil
}

// Claims carry the public user view; the subject repeats the user id.
type Claims struct {
	jwt.RegisteredClaims
	User models.PublicUser `json:"user"`
}

// SignedCodec stores the snapshot as a JWT so that a hand-edited value in
// the store is rejected on read.
type SignedCodec struct {
	key    []byte
	parser *jwt.Parser
	now    func() time.Time
}

func NewSignedCodec(secret []byte) (*SignedCodec, error) {
	key, err := cryptox.DeriveSigningKey(secret, signingKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive signing key: %w", err)
	}

	return &SignedCodec{
		key:    key,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		now:    time.Now,
	}, nil
}

func (c *SignedCodec) Encode(u models.PublicUser) ([]byte, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
		User: u,
	})

	s, err := token.SignedString(c.key)
	if err != nil {
		return nil, fmt.Errorf("sign snapshot: %w", err)
	}
	return []byte(s), nil
}

func (c *SignedCodec) Decode(b []byte) (*models.PublicUser, error) {
	claims := &Claims{}

	token, err := c.parser.ParseWithClaims(string(b), claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}

	if !token.Valid || claims.User.ID == "" || claims.Subject != claims.User.ID {
		return nil, fmt.Errorf("%w: bad claims", common.ErrInvalidSnapshot)
	}

	return &claims.User, nil
}
