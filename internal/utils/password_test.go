package utils_test

import (
	"testing"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// Stored credential format is a plain hex SHA-256 digest; existing
	// installations depend on this exact value for the factory password.
	assert.Equal(t, utils.DefaultPasswordHash, utils.HashPassword("123"))
	assert.Len(t, utils.HashPassword("anything"), 64)
}

func TestCheckPasswordHash(t *testing.T) {
	hash := utils.HashPassword("s3cret")
	assert.True(t, utils.CheckPasswordHash("s3cret", hash))
	assert.False(t, utils.CheckPasswordHash("S3cret", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, utils.IsValidPhone("0100123456"))
	assert.True(t, utils.IsValidPhone("201001234567"))
	// Separators are stripped before counting digits.
	assert.True(t, utils.IsValidPhone("01001-23456"))
	assert.True(t, utils.IsValidPhone("٠١٠٠١٢٣٤٥٦"))
	assert.False(t, utils.IsValidPhone("12345"))
	assert.False(t, utils.IsValidPhone("010012345"))
	assert.False(t, utils.IsValidPhone(""))
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := utils.GenerateSessionToken("test-secret", "daftari")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseSessionToken(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "daftari", claims.Issuer)
	assert.Nil(t, claims.ExpiresAt)

	_, err = utils.ParseSessionToken(token, "wrong-secret")
	assert.Error(t, err)
}
