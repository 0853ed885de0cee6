package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2idParams are the Argon2id tuning parameters used for password hashes.
type argon2idParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

var defaultHashParams = argon2idParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
	saltLen: 16,
}

// HashPassword hashes a password with Argon2id and encodes the parameters,
// salt, and digest into a single string.
func HashPassword(password string) (string, error) {
	p := defaultHashParams
	salt := make([]byte, int(p.saltLen))
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
	return fmt.Sprintf("argon2id$%d$%d$%d$%s$%s",
		p.time, p.memory, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "argon2id" {
		return false, fmt.Errorf("invalid hash format")
	}
	timeVal, err := parseUint32(parts[1])
	if err != nil {
		return false, fmt.Errorf("invalid time parameter: %w", err)
	}
	memoryVal, err := parseUint32(parts[2])
	if err != nil {
		return false, fmt.Errorf("invalid memory parameter: %w", err)
	}
	threadsVal, err := parseUint32(parts[3])
	if err != nil || threadsVal == 0 || threadsVal > 255 {
		return false, fmt.Errorf("invalid threads parameter")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decode hash: %w", err)
	}

	computed := argon2.IDKey([]byte(password), salt, timeVal, memoryVal, uint8(threadsVal), uint32(len(hash)))
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

func parseUint32(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}
