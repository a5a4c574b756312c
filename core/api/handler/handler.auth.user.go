package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// UserHandler xử lý các request về người dùng và xác thực
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler tạo mới một UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create xử lý POST /auth/users - tạo người dùng mới (route public)
func (h *UserHandler) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.UserCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		user, err := h.userService.Create(c.Context(), input)
		return HandleResponse(c, user, err)
	})
}

// BulkCreate xử lý POST /auth/users/bulk - tạo nhiều người dùng (route public)
func (h *UserHandler) BulkCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []dto.UserCreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return HandleResponse(c, nil, err)
		}
		// Validate từng phần tử vì validator không tự dive vào slice gốc
		for i := range inputs {
			if err := validateStruct(&inputs[i]); err != nil {
				return HandleResponse(c, nil, err)
			}
		}

		users, err := h.userService.BulkCreate(c.Context(), inputs)
		return HandleResponse(c, users, err)
	})
}

// Login xử lý POST /auth/login - đăng nhập và phát hành token (route public)
func (h *UserHandler) Login(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.UserLoginInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.userService.Login(c.Context(), input)
		return HandleResponse(c, result, err)
	})
}

// Me xử lý GET /users/me - thông tin người dùng đang đăng nhập
func (h *UserHandler) Me(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		user, err := h.userService.FindOneById(c.Context(), userID)
		return HandleResponse(c, user, err)
	})
}

// GetById xử lý GET /users/:id
func (h *UserHandler) GetById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		user, err := h.userService.FindOneById(c.Context(), id)
		return HandleResponse(c, user, err)
	})
}

// ListByDepartment xử lý GET /users/department/:department
func (h *UserHandler) ListByDepartment(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		users, err := h.userService.FindByDepartment(c.Context(), c.Params("department"))
		return HandleResponse(c, users, err)
	})
}
