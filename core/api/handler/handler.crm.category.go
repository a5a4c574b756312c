package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// CaseCategoryHandler xử lý các request về danh mục case
type CaseCategoryHandler struct {
	categoryService *services.CaseCategoryService
}

// NewCaseCategoryHandler tạo mới một CaseCategoryHandler
func NewCaseCategoryHandler(categoryService *services.CaseCategoryService) *CaseCategoryHandler {
	return &CaseCategoryHandler{categoryService: categoryService}
}

// Create xử lý POST /case-categories
func (h *CaseCategoryHandler) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.CaseCategoryCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		category, err := h.categoryService.Create(c.Context(), input)
		return HandleResponse(c, category, err)
	})
}

// BulkCreate xử lý POST /case-categories/bulk
func (h *CaseCategoryHandler) BulkCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []dto.CaseCategoryCreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return HandleResponse(c, nil, err)
		}
		for i := range inputs {
			if err := validateStruct(&inputs[i]); err != nil {
				return HandleResponse(c, nil, err)
			}
		}

		categories, err := h.categoryService.BulkCreate(c.Context(), inputs)
		return HandleResponse(c, categories, err)
	})
}

// List xử lý GET /case-categories - tất cả danh mục, hoặc lọc theo ?lob=
func (h *CaseCategoryHandler) List(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		if lob := c.Query("lob", ""); lob != "" {
			categories, err := h.categoryService.FindByLob(c.Context(), lob)
			return HandleResponse(c, categories, err)
		}

		categories, err := h.categoryService.Find(c.Context(), nil, nil)
		return HandleResponse(c, categories, err)
	})
}
