// Package cryptox implements salted password hashing for stored accounts.
//
// A password is stretched with argon2id under a random per-user salt and the
// derived key is reduced to a SHA-256 verifier. Only the salt and verifier
// are persisted, encoded as "argon2id$<salt hex>$<verifier hex>".
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	schemeArgon2id = "argon2id"
	saltSize       = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// MakeVerifier reduces a derived key to the value stored for comparison.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// DeriveKey stretches password with argon2id under salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns the encoded salt and verifier for password.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	return encode(salt, MakeVerifier(DeriveKey(password, salt)))
}

// VerifyPassword reports whether password matches the encoded hash.
// The comparison runs in constant time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	salt, verifier, err := decode(encoded)
	if err != nil {
		return false, err
	}
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1, nil
}

func encode(salt, verifier []byte) string {
	return strings.Join([]string{schemeArgon2id, hex.EncodeToString(salt), hex.EncodeToString(verifier)}, "$")
}

func decode(encoded string) (salt, verifier []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != schemeArgon2id {
		return nil, nil, ErrMalformedHash
	}
	if salt, err = hex.DecodeString(parts[1]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	if verifier, err = hex.DecodeString(parts[2]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	return salt, verifier, nil
}
