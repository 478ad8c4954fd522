// Package security implements password hashing for stored credentials.
//
// Hashes use Argon2id with fixed cost parameters and are stored in the PHC
// string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>
//
// All parameters are self-contained in the string, so a previously produced
// hash verifies without external configuration. A secret pepper (from config,
// may be empty) is appended to the plaintext before hashing; the pepper is NOT
// stored, so verification requires the same pepper the hash was created with.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Fixed Argon2id parameters. Exceed OWASP ASVS Level 2 (m>=19 MiB, t>=2, p>=1).
const (
	argonMemory  = 64 * 1024 // KiB
	argonTime    = 3
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

var ErrHashMalformado = errors.New("hash con formato invalido")

// Hasher produces and verifies peppered Argon2id password hashes.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash generates a salted, peppered Argon2id hash in PHC string format.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password+h.pepper), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the encoded PHC hash.
// The cost parameters are taken from the hash itself, so hashes created with
// older parameters keep verifying after a parameter bump.
func (h *Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrHashMalformado
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrHashMalformado
	}
	if version != argon2.Version {
		return false, fmt.Errorf("version argon2 incompatible: %d", version)
	}

	var mem, iter uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return false, ErrHashMalformado
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrHashMalformado
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrHashMalformado
	}

	got := argon2.IDKey([]byte(password+h.pepper), salt, iter, mem, par, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
