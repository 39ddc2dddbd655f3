package password

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them changes every derived hash, so they
// are fixed for the lifetime of the stored credentials.
const (
	saltLen = 16
	passes  = 1
	memory  = 64 * 1024
	threads = 4
	keyLen  = 32
)

// Hasher derives a deterministic salted hash: the same (password, salt)
// pair always yields the same hash string.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// NewSalt returns a fresh random salt encoded as a URL-safe string.
func (h *Hasher) NewSalt() (string, error) {
	buf := make([]byte, saltLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash derives the argon2id hash of password under salt.
func (h *Hasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), passes, memory, threads, keyLen)
	return base64.RawURLEncoding.EncodeToString(key)
}
