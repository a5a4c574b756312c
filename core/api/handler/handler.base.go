// Package handler chứa các HTTP handler của API.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleResponse chuẩn hóa response trả về cho client.
// Mọi handler đều đi qua hàm này để format response thống nhất.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
		}
		// Lỗi không xác định, trả về internal server error
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler bọc handler với recover để server luôn trả về response,
// kể cả khi có panic xảy ra
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Validator chỉ nhận struct, input dạng slice do caller tự validate từng phần tử
	v := reflect.ValueOf(input)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		return validateStruct(input)
	}

	return nil
}

// validateStruct chạy validator trên một struct input
func validateStruct(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseObjectIDParam parse một URI param thành ObjectID
func ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số %s không phải ObjectID hợp lệ", name),
			common.StatusBadRequest,
			nil,
		)
	}
	return id, nil
}

// CurrentUserID lấy id người dùng đã xác thực từ context.
// Middleware RequireAuth phải chạy trước khi gọi hàm này.
func CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, ok := c.Locals("user_id").(primitive.ObjectID)
	if !ok || userID == primitive.NilObjectID {
		return primitive.NilObjectID, common.ErrNotAuthenticated
	}
	return userID, nil
}
