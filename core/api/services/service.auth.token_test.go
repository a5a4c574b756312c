package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := primitive.NewObjectID()

	token, err := svc.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenService_VerifyEmptyToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, common.ErrTokenMissing)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue(primitive.NewObjectID())
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestTokenService_VerifyTamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(primitive.NewObjectID())
	assert.NoError(t, err)

	// Đổi ký tự cuối của chữ ký
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestTokenService_VerifyExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := NewTokenService(secret)

	// Dựng token đã hết hạn bằng cùng secret
	claims := models.JwtClaims{
		UserID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-11 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestTokenService_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := NewTokenService("test-secret")

	// Token ký bằng thuật toán none phải bị từ chối
	claims := models.JwtClaims{UserID: primitive.NewObjectID().Hex()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
}

func TestTokenService_TTLIsTenHours(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := primitive.NewObjectID()

	token, err := svc.Issue(userID)
	assert.NoError(t, err)

	claims := &models.JwtClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)

	var tokenErr error
	_, tokenErr = svc.Verify(token)
	assert.False(t, errors.Is(tokenErr, common.ErrTokenExpired))
}
