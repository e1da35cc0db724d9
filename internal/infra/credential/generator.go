package credential

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"lmi/internal/domain/service"
)

const defaultPasswordLength = 12

// passwordCharset mixes letters, digits and symbols that survive copy-paste
// from common mail clients.
const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%*+-"

// randomGenerator produces one-time passwords from crypto/rand.
type randomGenerator struct {
	length int
}

// NewRandomGenerator is the constructor for randomGenerator.
// A non-positive length falls back to defaultPasswordLength.
func NewRandomGenerator(length int) service.CredentialGenerator {
	if length <= 0 {
		length = defaultPasswordLength
	}

	return &randomGenerator{length: length}
}

// Generate returns a fresh random credential in plaintext.
func (g *randomGenerator) Generate() (string, error) {
	charsetSize := big.NewInt(int64(len(passwordCharset)))

	buf := make([]byte, g.length)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, charsetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate credential")
		}

		buf[i] = passwordCharset[idx.Int64()]
	}

	return string(buf), nil
}
