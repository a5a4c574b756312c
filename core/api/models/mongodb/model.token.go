package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JwtClaims định nghĩa payload của token xác thực.
// Token chỉ mang định danh người dùng và thời điểm hết hạn.
type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
