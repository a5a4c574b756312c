package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// SystemHandler xử lý các request hệ thống
type SystemHandler struct{}

// NewSystemHandler tạo mới một SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health xử lý GET /system/health - kiểm tra trạng thái server và database
func (h *SystemHandler) Health(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if global.MongoDB_Session == nil || global.MongoDB_Session.Ping(ctx, nil) != nil {
			dbStatus = "down"
		}

		status := common.StatusOK
		if dbStatus == "down" {
			status = common.StatusServiceUnavailable
		}

		return JSONResponse(c, status, fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"time":     time.Now().UnixMilli(),
		})
	})
}
