// Package credential provides concrete implementations for the credential
// generation and hashing domain services.
package credential

import (
	"golang.org/x/crypto/bcrypt"

	"lmi/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// A non-positive cost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) service.CredentialHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext credential using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)

	return string(bytes), err
}

// Compare checks a plaintext credential against a bcrypt hash.
func (h *bcryptHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
