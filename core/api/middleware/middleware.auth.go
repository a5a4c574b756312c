// Package middleware cung cấp các middleware cho API.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/services"
	"github.com/bnlarose/touchpoint-api/core/common"
)

// AuthManager quản lý xác thực request bằng JWT
type AuthManager struct {
	userService *services.UserService
}

// NewAuthManager tạo mới một AuthManager
func NewAuthManager(userService *services.UserService) *AuthManager {
	return &AuthManager{userService: userService}
}

// extractBearerToken lấy token từ header Authorization dạng "Bearer <token>"
func extractBearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// RequireAuth kiểm tra token của request và nạp người dùng vào context.
// Mọi route ngoài nhóm public đều phải đi qua middleware này.
func (m *AuthManager) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return common.ErrTokenMissing
		}

		userID, err := m.userService.Tokens().Verify(token)
		if err != nil {
			return err
		}

		user, err := m.userService.FindOneById(c.Context(), userID)
		if err != nil {
			// Token hợp lệ nhưng người dùng đã bị xóa
			return common.ErrNotAuthenticated
		}

		c.Locals("user_id", user.ID)
		c.Locals("user", user)

		return c.Next()
	}
}
