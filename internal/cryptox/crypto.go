// Package cryptox holds the password digest used by the account registry and
// the key derivation used to sign session snapshots.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// PasswordSalt is appended to every password before hashing. It is shared by
// all accounts.
const PasswordSalt = "school-platform-salt"

// SigningKeySize is the length in bytes of keys returned by DeriveSigningKey.
const SigningKeySize = 32

var ErrEmptySecret = errors.New("empty secret")

// HashPassword returns the lower-case hex SHA-256 digest of password+PasswordSalt.
// The result is always 64 characters long.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + PasswordSalt))
	return hex.EncodeToString(sum[:])
}

// EqualHashes compares two digests in constant time.
func EqualHashes(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// DeriveSigningKey expands secret into a SigningKeySize key bound to info.
func DeriveSigningKey(secret []byte, info string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	r := hkdf.New(sha256.New, secret, nil, []byte(info))

	key := make([]byte, SigningKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	return key, nil
}
