package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxurystay-backend/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 7, Role: models.RoleAdmin}, 60)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	info, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), info.UserID)
	assert.Equal(t, models.RoleAdmin, info.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "first-secret")
	token, err := GenerateToken(UserInfo{UserID: 7, Role: models.RoleUser}, 60)
	assert.NoError(t, err)

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 7, Role: models.RoleUser}, -1)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsUnknownRole(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 7, Role: "superuser"}, 60)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsZeroUserID(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 0, Role: models.RoleUser}, 60)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
