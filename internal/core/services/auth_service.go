package services

import (
	"context"
	"fmt"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/utils"
)

// AuthService is the credential store. There is one shared office password
// (unsalted SHA-256, an access gate, not a security boundary) and at most one
// persisted session token, which never expires.
type AuthService struct {
	credentialRepo portsrepo.CredentialRepository
	sessionSecret  string
	sessionIssuer  string
}

// NewAuthService creates an AuthService.
func NewAuthService(credentialRepo portsrepo.CredentialRepository, sessionSecret, sessionIssuer string) *AuthService {
	return &AuthService{
		credentialRepo: credentialRepo,
		sessionSecret:  sessionSecret,
		sessionIssuer:  sessionIssuer,
	}
}

// Login verifies the password against the stored hash (defaulting to the hash
// of "123" when none is set) and, on match, issues and persists a session
// token. A mismatch has no side effects.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	storedHash := s.credentialRepo.FindPasswordHash(ctx)
	if !utils.CheckPasswordHash(password, storedHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.sessionSecret, s.sessionIssuer)
	if err != nil {
		// Token generation failure degrades to a failed login, never a panic.
		return "", fmt.Errorf("failed to issue session token: %w", apperrors.ErrInvalidCredentials)
	}

	s.credentialRepo.SaveSessionToken(ctx, token)
	return token, nil
}

// Logout removes the persisted session token. Unconditional; confirmation is
// a presentation concern.
func (s *AuthService) Logout(ctx context.Context) {
	s.credentialRepo.DeleteSessionToken(ctx)
}

// ChangePassword verifies the old password and persists the hash of the new
// one. Existing session tokens stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	storedHash := s.credentialRepo.FindPasswordHash(ctx)
	if !utils.CheckPasswordHash(oldPassword, storedHash) {
		return apperrors.ErrInvalidCredentials
	}
	if newPassword == "" {
		return fmt.Errorf("%w: new password must not be empty", apperrors.ErrValidation)
	}

	s.credentialRepo.SavePasswordHash(ctx, utils.HashPassword(newPassword))
	return nil
}

// HasSession reports whether a previously issued token is persisted.
func (s *AuthService) HasSession(ctx context.Context) bool {
	_, ok := s.credentialRepo.FindSessionToken(ctx)
	return ok
}
