package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnlarose/touchpoint-api/core/global"
)

func validUserInput() UserCreateInput {
	return UserCreateInput{
		Username:   "jdoe",
		Email:      "jdoe@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Password:   "super-secret-1",
		Site:       "port-of-spain",
		Department: "care",
		Position:   "csr",
	}
}

func TestUserCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	input := validUserInput()
	assert.NoError(t, global.Validate.Struct(input))

	// Site ngoài danh sách bị từ chối
	input = validUserInput()
	input.Site = "london"
	assert.Error(t, global.Validate.Struct(input))

	// Password quá ngắn bị từ chối
	input = validUserInput()
	input.Password = "short"
	assert.Error(t, global.Validate.Struct(input))

	// ReportsTo tùy chọn nhưng phải là ObjectID hợp lệ khi có
	input = validUserInput()
	input.ReportsTo = "507f1f77bcf86cd799439011"
	assert.NoError(t, global.Validate.Struct(input))

	input.ReportsTo = "xyz"
	assert.Error(t, global.Validate.Struct(input))
}

func TestCaseCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	input := CaseCreateInput{
		Title:    "Mất kết nối internet",
		Lob:      "internet",
		Category: "507f1f77bcf86cd799439011",
	}
	assert.NoError(t, global.Validate.Struct(input))

	input.Lob = "insurance"
	assert.Error(t, global.Validate.Struct(input))

	input.Lob = "internet"
	input.Category = ""
	assert.Error(t, global.Validate.Struct(input), "category bắt buộc")
}

func TestInteractionCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	input := InteractionCreateInput{
		Channel:        "phone",
		InteractedWith: "Jane Doe",
		Contact:        "868-555-0100",
		Details:        "Khách hàng báo mất kết nối",
	}
	assert.NoError(t, global.Validate.Struct(input))

	// Contact bắt buộc, không được bỏ trống
	input.Contact = ""
	assert.Error(t, global.Validate.Struct(input))

	input.Contact = "868-555-0100"
	input.Channel = "fax"
	assert.Error(t, global.Validate.Struct(input))
}

func TestActionRequestCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	input := ActionRequestCreateInput{
		Due:         1700000000000,
		AssignedTo:  "dispatch",
		RequestType: "callback",
		Details:     "Gọi lại khách hàng trước 5 giờ chiều",
	}
	assert.NoError(t, global.Validate.Struct(input))

	input.AssignedTo = "finance"
	assert.Error(t, global.Validate.Struct(input))

	input.AssignedTo = "dispatch"
	input.RequestType = "refund"
	assert.Error(t, global.Validate.Struct(input))
}

func TestContactCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	input := ContactCreateInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		PhoneList: []PhoneInput{{Category: "mobile", Number: "868-555-0100"}},
	}
	assert.NoError(t, global.Validate.Struct(input))

	// Dive phải validate từng phần tử trong phone_list
	input.PhoneList = []PhoneInput{{Category: "fax", Number: "868-555-0100"}}
	assert.Error(t, global.Validate.Struct(input))

	input.PhoneList = nil
	assert.NoError(t, global.Validate.Struct(input), "phone_list được phép rỗng")

	input.Email = "not-an-email"
	assert.Error(t, global.Validate.Struct(input))
}

func TestActionRequestStatusInput_Validation(t *testing.T) {
	global.InitValidator()

	for _, status := range []string{"open", "resolving", "escalated", "closed"} {
		assert.NoError(t, global.Validate.Struct(ActionRequestStatusInput{Status: status}))
	}

	assert.Error(t, global.Validate.Struct(ActionRequestStatusInput{Status: "done"}))
}
