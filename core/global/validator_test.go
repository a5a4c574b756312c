package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateObjectID(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("507f1f77bcf86cd799439011", "object_id"))
	assert.Error(t, Validate.Var("not-an-object-id", "object_id"))
	assert.Error(t, Validate.Var("507f1f77bcf86cd79943901", "object_id"), "thiếu một ký tự hex phải bị từ chối")

	// Chuỗi rỗng hợp lệ, required mới bắt buộc có giá trị
	assert.NoError(t, Validate.Var("", "object_id"))
	assert.Error(t, Validate.Var("", "required,object_id"))
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Mất kết nối internet", "no_xss"))
	assert.NoError(t, Validate.Var("Jane Doe", "no_xss"))

	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	assert.Error(t, Validate.Var("javascript:alert(1)", "no_xss"))
	assert.Error(t, Validate.Var("<IFRAME src=x>", "no_xss"), "pattern phải bắt được cả chữ hoa")
}
