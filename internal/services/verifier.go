package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Verifier turns a password into a storable secret and checks a presented
// password against a stored one. Swapping the implementation changes how
// credentials are stored without touching the store's interface contract.
type Verifier interface {
	// Seal converts a password into the form kept in the durable store.
	Seal(password []byte) (string, error)

	// Verify reports whether password matches the stored secret.
	Verify(stored string, password []byte) bool
}

// PlainVerifier stores the password verbatim and compares it byte for
// byte, reproducing the original plain-text credential behavior.
type PlainVerifier struct{}

func (PlainVerifier) Seal(password []byte) (string, error) {
	return string(password), nil
}

func (PlainVerifier) Verify(stored string, password []byte) bool {
	return subtle.ConstantTimeCompare([]byte(stored), password) == 1
}

// Argon2id parameters.
const (
	argon2Time    = 3
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

var errInvalidHash = errors.New("invalid hash format")

// Argon2Verifier stores an Argon2id hash in PHC string format instead of
// the password itself.
type Argon2Verifier struct{}

func (Argon2Verifier) Seal(password []byte) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func (Argon2Verifier) Verify(stored string, password []byte) bool {
	salt, hash, memory, time, threads, err := decodeArgon2(stored)
	if err != nil {
		return false
	}
	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

func decodeArgon2(stored string) (salt, hash []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, errInvalidHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, errInvalidHash
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, errInvalidHash
	}
	return salt, hash, memory, time, threads, nil
}
