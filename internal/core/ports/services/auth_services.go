package services

import "context"

// AuthSvcFacade is the credential store: a single shared secret and one
// session token. Mismatches are reported as apperrors.ErrInvalidCredentials,
// never as panics; hashing or storage failures degrade to a failed login.
type AuthSvcFacade interface {
	// Login verifies the password and returns a new session token.
	Login(ctx context.Context, password string) (string, error)

	// Logout removes the persisted session token. Unconditional.
	Logout(ctx context.Context)

	// ChangePassword verifies the old password and stores the hash of the new
	// one. Existing session tokens stay valid.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// HasSession reports whether a previously issued token is persisted, i.e.
	// whether a session can resume without a fresh login.
	HasSession(ctx context.Context) bool
}
