package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// CaseHandler xử lý các request trên cây case
type CaseHandler struct {
	caseService *services.CaseService
}

// NewCaseHandler tạo mới một CaseHandler
func NewCaseHandler(caseService *services.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// CreateCase xử lý POST /accounts/:number/cases.
// Người mở case là người dùng đã xác thực.
func (h *CaseHandler) CreateCase(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		number, err := parseAccountNumber(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		input := new(dto.CaseCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.caseService.CreateCase(c.Context(), number, userID, input)
		return HandleResponse(c, result, err)
	})
}

// GetCase xử lý GET /cases/:id - tìm case theo id, không cần số tài khoản
func (h *CaseHandler) GetCase(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		caseID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.caseService.FindCaseByID(c.Context(), caseID)
		return HandleResponse(c, result, err)
	})
}

// DeleteCase xử lý DELETE /accounts/:number/cases/:id
func (h *CaseHandler) DeleteCase(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		number, err := parseAccountNumber(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		caseID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		err = h.caseService.DeleteCase(c.Context(), number, caseID)
		return HandleResponse(c, nil, err)
	})
}

// CreateInteraction xử lý POST /cases/:id/interactions.
// Người ghi nhận là người dùng đã xác thực.
func (h *CaseHandler) CreateInteraction(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		caseID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		input := new(dto.InteractionCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		interaction, err := h.caseService.CreateInteraction(c.Context(), caseID, userID, input)
		return HandleResponse(c, interaction, err)
	})
}

// CreateActionRequest xử lý POST /interactions/:id/action-requests.
// Người yêu cầu là người dùng đã xác thực.
func (h *CaseHandler) CreateActionRequest(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		interactionID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		input := new(dto.ActionRequestCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		ar, err := h.caseService.CreateActionRequest(c.Context(), interactionID, userID, input)
		return HandleResponse(c, ar, err)
	})
}

// ChangeActionRequestStatus xử lý PATCH /action-requests/:id/status
func (h *CaseHandler) ChangeActionRequestStatus(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		arID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		input := new(dto.ActionRequestStatusInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		ar, err := h.caseService.ChangeActionRequestStatus(c.Context(), arID, input.Status)
		return HandleResponse(c, ar, err)
	})
}

// ClaimActionRequest xử lý PATCH /action-requests/:id/claim.
// Người nhận xử lý là người dùng đã xác thực.
func (h *CaseHandler) ClaimActionRequest(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		arID, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		ar, err := h.caseService.ClaimActionRequest(c.Context(), arID, userID)
		return HandleResponse(c, ar, err)
	})
}
