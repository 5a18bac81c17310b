package services_test

import (
	"context"
	"testing"

	"github.com/daftari-app/daftari/internal/apperrors"
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/core/services"
	"github.com/daftari-app/daftari/internal/utils"
	"github.com/stretchr/testify/suite"
)

// fakeCredentialRepository is an in-memory credential store. A hand-rolled
// fake reads better than a mock here because the login flow tests exercise
// sequences of calls against the same state.
type fakeCredentialRepository struct {
	passwordHash string
	sessionToken string
}

func (f *fakeCredentialRepository) FindPasswordHash(ctx context.Context) string {
	if f.passwordHash == "" {
		return utils.DefaultPasswordHash
	}
	return f.passwordHash
}

func (f *fakeCredentialRepository) SavePasswordHash(ctx context.Context, hash string) {
	f.passwordHash = hash
}

func (f *fakeCredentialRepository) FindSessionToken(ctx context.Context) (string, bool) {
	return f.sessionToken, f.sessionToken != ""
}

func (f *fakeCredentialRepository) SaveSessionToken(ctx context.Context, token string) {
	f.sessionToken = token
}

func (f *fakeCredentialRepository) DeleteSessionToken(ctx context.Context) {
	f.sessionToken = ""
}

type AuthServiceTestSuite struct {
	suite.Suite
	repo    *fakeCredentialRepository
	service portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.repo = &fakeCredentialRepository{}
	suite.service = services.NewAuthService(suite.repo, "test-secret", "daftari")
}

func (suite *AuthServiceTestSuite) TestLogin_DefaultPassword() {
	ctx := context.Background()

	token, err := suite.service.Login(ctx, "123")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(token, suite.repo.sessionToken)

	claims, err := utils.ParseSessionToken(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("daftari", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	token, err := suite.service.Login(ctx, "wrong")

	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	// A failed login leaves no session behind.
	suite.Empty(suite.repo.sessionToken)
}

func (suite *AuthServiceTestSuite) TestChangePassword_Flow() {
	ctx := context.Background()

	// Change from the default, then the old password stops working.
	suite.Require().NoError(suite.service.ChangePassword(ctx, "123", "abc"))

	_, err := suite.service.Login(ctx, "123")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	token, err := suite.service.Login(ctx, "abc")
	suite.Require().NoError(err)
	suite.NotEmpty(token)
}

func (suite *AuthServiceTestSuite) TestChangePassword_WrongOld() {
	ctx := context.Background()

	err := suite.service.ChangePassword(ctx, "nope", "abc")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Empty(suite.repo.passwordHash)
}

func (suite *AuthServiceTestSuite) TestChangePassword_EmptyNew() {
	ctx := context.Background()

	err := suite.service.ChangePassword(ctx, "123", "")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestChangePassword_KeepsSession() {
	ctx := context.Background()

	token, err := suite.service.Login(ctx, "123")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.ChangePassword(ctx, "123", "abc"))

	suite.True(suite.service.HasSession(ctx))
	suite.Equal(token, suite.repo.sessionToken)
}

func (suite *AuthServiceTestSuite) TestLogoutAndHasSession() {
	ctx := context.Background()

	suite.False(suite.service.HasSession(ctx))

	_, err := suite.service.Login(ctx, "123")
	suite.Require().NoError(err)
	suite.True(suite.service.HasSession(ctx))

	suite.service.Logout(ctx)
	suite.False(suite.service.HasSession(ctx))

	// Logout with no session is a no-op.
	suite.service.Logout(ctx)
	suite.False(suite.service.HasSession(ctx))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
