package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry đã gắn sẵn thông tin request để trace log theo request id
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		fields["request_id"] = requestID
	}

	switch userID := c.Locals("user_id").(type) {
	case string:
		if userID != "" {
			fields["user_id"] = userID
		}
	case fmt.Stringer:
		fields["user_id"] = userID.String()
	}

	return GetAppLogger().WithFields(fields)
}
