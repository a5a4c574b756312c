package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
	"github.com/bnlarose/touchpoint-api/core/common"
)

// ContactHandler xử lý các request về người liên hệ
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler tạo mới một ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create xử lý POST /contacts
func (h *ContactHandler) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.ContactCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		contact, err := h.contactService.Create(c.Context(), input)
		return HandleResponse(c, contact, err)
	})
}

// BulkCreate xử lý POST /contacts/bulk
func (h *ContactHandler) BulkCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []dto.ContactCreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return HandleResponse(c, nil, err)
		}
		for i := range inputs {
			if err := validateStruct(&inputs[i]); err != nil {
				return HandleResponse(c, nil, err)
			}
		}

		contacts, err := h.contactService.BulkCreate(c.Context(), inputs)
		return HandleResponse(c, contacts, err)
	})
}

// Search xử lý GET /contacts/search?q=<term> - tìm kiếm full-text
func (h *ContactHandler) Search(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		term := c.Query("q", "")
		if term == "" {
			return HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu từ khóa tìm kiếm q",
				common.StatusBadRequest,
				nil,
			))
		}

		contacts, err := h.contactService.Search(c.Context(), term)
		return HandleResponse(c, contacts, err)
	})
}

// GetById xử lý GET /contacts/:id
func (h *ContactHandler) GetById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		contact, err := h.contactService.FindOneById(c.Context(), id)
		return HandleResponse(c, contact, err)
	})
}
