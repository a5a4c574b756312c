package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// PackageHandler xử lý các request về gói dịch vụ
type PackageHandler struct {
	packageService *services.PackageService
}

// NewPackageHandler tạo mới một PackageHandler
func NewPackageHandler(packageService *services.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// Create xử lý POST /packages
func (h *PackageHandler) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.PackageCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		pkg, err := h.packageService.Create(c.Context(), input)
		return HandleResponse(c, pkg, err)
	})
}

// BulkCreate xử lý POST /packages/bulk
func (h *PackageHandler) BulkCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []dto.PackageCreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return HandleResponse(c, nil, err)
		}
		for i := range inputs {
			if err := validateStruct(&inputs[i]); err != nil {
				return HandleResponse(c, nil, err)
			}
		}

		packages, err := h.packageService.BulkCreate(c.Context(), inputs)
		return HandleResponse(c, packages, err)
	})
}

// List xử lý GET /packages - tất cả gói, hoặc lọc theo ?lob=
func (h *PackageHandler) List(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		if lob := c.Query("lob", ""); lob != "" {
			packages, err := h.packageService.FindByLob(c.Context(), lob)
			return HandleResponse(c, packages, err)
		}

		packages, err := h.packageService.Find(c.Context(), nil, nil)
		return HandleResponse(c, packages, err)
	})
}

// GetById xử lý GET /packages/:id
func (h *PackageHandler) GetById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		pkg, err := h.packageService.FindOneById(c.Context(), id)
		return HandleResponse(c, pkg, err)
	})
}
