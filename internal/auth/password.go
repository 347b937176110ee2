package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters, deliberately slow
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	saltLen = 16
	keyLen  = 64
)

// HashPassword derives a storable hash in the form hex(salt):hex(key).
// A fresh salt is generated per call, so two hashes of the same password
// never match.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword checks a candidate password against a stored hash.
// A malformed stored hash verifies as false rather than erroring; the
// caller only ever learns "wrong credentials".
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	// length check first, constant-time compare on equal lengths only
	if len(key) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare(key, expected) == 1
}
