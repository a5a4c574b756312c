package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
)

// TokenTTL thời gian sống của token xác thực
const TokenTTL = 10 * time.Hour

// TokenService chịu trách nhiệm phát hành và kiểm tra token xác thực
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService tạo mới một TokenService với secret ký HS256
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

// Issue phát hành token cho một người dùng.
// Token hết hạn sau 10 giờ kể từ thời điểm phát hành.
func (s *TokenService) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := models.JwtClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể phát hành token", common.StatusInternalServerError, err)
	}

	return signed, nil
}

// Verify kiểm tra chữ ký và hạn của token, trả về ObjectID của người dùng.
// Token hết hạn trả về ErrTokenExpired, các lỗi khác trả về ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (primitive.ObjectID, error) {
	if tokenString == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}

	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HMAC, chặn tấn công đổi thuật toán ký
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, common.ErrTokenExpired
		}
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	if !token.Valid {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}
