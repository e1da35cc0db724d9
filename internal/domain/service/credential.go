// Package service defines interfaces for supporting services consumed by the
// use case layer. Implementations live under internal/infra.
package service

import "context"

// CredentialGenerator produces the one-time password issued to a freshly
// created admin account. It is called exactly once per account, at creation.
type CredentialGenerator interface {
	// Generate returns a new random credential in plaintext.
	Generate() (string, error)
}

// CredentialHasher hashes the generated credential for storage and verifies
// candidates against a stored hash. The plaintext is never persisted.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

// CredentialNotice is the payload handed to the out-of-band delivery channel
// after an admin account has been committed.
type CredentialNotice struct {
	RequestID string `json:"request_id,omitempty"` // for tracing across the channel
	AdminID   uint   `json:"admin_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"` // plaintext, exists only in transit
}

// CredentialDispatcher delivers the generated credential to the new admin.
// Dispatch runs after the creating transaction has committed; failures are
// reported to the caller, which logs them without unwinding the create.
type CredentialDispatcher interface {
	// Dispatch sends the credential notice over the configured channel.
	Dispatch(ctx context.Context, notice *CredentialNotice) error

	// Close releases any resources held by the dispatcher.
	Close() error
}
