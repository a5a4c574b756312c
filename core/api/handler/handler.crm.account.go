package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	"github.com/bnlarose/touchpoint-api/core/api/services"
	"github.com/bnlarose/touchpoint-api/core/common"
)

// AccountHandler xử lý các request về tài khoản khách hàng
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler tạo mới một AccountHandler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// parseAccountNumber parse URI param :number thành số tài khoản
func parseAccountNumber(c fiber.Ctx) (int64, error) {
	number, err := strconv.ParseInt(c.Params("number"), 10, 64)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Số tài khoản không hợp lệ: %s", c.Params("number")),
			common.StatusBadRequest,
			nil,
		)
	}
	return number, nil
}

// Create xử lý POST /accounts
func (h *AccountHandler) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(dto.AccountCreateInput)
		if err := ParseRequestBody(c, input); err != nil {
			return HandleResponse(c, nil, err)
		}

		account, err := h.accountService.Create(c.Context(), input)
		return HandleResponse(c, account, err)
	})
}

// BulkCreate xử lý POST /accounts/bulk
func (h *AccountHandler) BulkCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []dto.AccountCreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return HandleResponse(c, nil, err)
		}
		for i := range inputs {
			if err := validateStruct(&inputs[i]); err != nil {
				return HandleResponse(c, nil, err)
			}
		}

		accounts, err := h.accountService.BulkCreate(c.Context(), inputs)
		return HandleResponse(c, accounts, err)
	})
}

// GetById xử lý GET /accounts/id/:id - tra cứu theo ObjectID thay vì số tài khoản
func (h *AccountHandler) GetById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		account, err := h.accountService.FindOneById(c.Context(), id)
		return HandleResponse(c, account, err)
	})
}

// GetByNumber xử lý GET /accounts/:number
func (h *AccountHandler) GetByNumber(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		number, err := parseAccountNumber(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		account, err := h.accountService.FindByNumber(c.Context(), number)
		return HandleResponse(c, account, err)
	})
}

// GetByContact xử lý GET /accounts/contact/:contactId
func (h *AccountHandler) GetByContact(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		contactID, err := ParseObjectIDParam(c, "contactId")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		accounts, err := h.accountService.FindByContact(c.Context(), contactID)
		return HandleResponse(c, accounts, err)
	})
}

// AttachContact xử lý POST /accounts/:number/contacts/:contactId
func (h *AccountHandler) AttachContact(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		number, err := parseAccountNumber(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		contactID, err := ParseObjectIDParam(c, "contactId")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		account, err := h.accountService.AttachContact(c.Context(), number, contactID)
		return HandleResponse(c, account, err)
	})
}

// AttachService xử lý POST /accounts/:number/services/:packageId
func (h *AccountHandler) AttachService(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		number, err := parseAccountNumber(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		packageID, err := ParseObjectIDParam(c, "packageId")
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		account, err := h.accountService.AttachService(c.Context(), number, packageID)
		return HandleResponse(c, account, err)
	})
}
