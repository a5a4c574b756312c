package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// ReportHandler xử lý các request báo cáo và dashboard
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler tạo mới một ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// EscalationQueue xử lý GET /escalations/:department - hàng đợi chưa có
// người nhận của một bộ phận
func (h *ReportHandler) EscalationQueue(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		items, err := h.reportService.EscalationQueue(c.Context(), c.Params("department"))
		return HandleResponse(c, items, err)
	})
}

// MyQueue xử lý GET /escalations/claimed/me - các yêu cầu người dùng
// đang đăng nhập đã nhận và chưa đóng
func (h *ReportHandler) MyQueue(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		items, err := h.reportService.ClaimedQueue(c.Context(), userID)
		return HandleResponse(c, items, err)
	})
}

// ManagerDashboard xử lý GET /dashboard/manager - các nhánh đếm trên
// bộ phận của người gọi
func (h *ReportHandler) ManagerDashboard(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.reportService.ManagerDashboard(c.Context(), userID)
		return HandleResponse(c, result, err)
	})
}

// SupervisorDashboard xử lý GET /dashboard/supervisor - như manager
// cộng thêm nhánh đếm theo từng nhân viên
func (h *ReportHandler) SupervisorDashboard(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.reportService.SupervisorDashboard(c.Context(), userID)
		return HandleResponse(c, result, err)
	})
}
