// Package dto định nghĩa các cấu trúc input cho API.
package dto

// UserCreateInput dữ liệu đầu vào để tạo người dùng mới
type UserCreateInput struct {
	Username   string `json:"username" validate:"required,min=3,max=50,no_xss"`
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required,no_xss"`
	LastName   string `json:"last_name" validate:"required,no_xss"`
	Password   string `json:"password" validate:"required,min=8"`
	Site       string `json:"site" validate:"required,oneof=arima contactc developer chaguanas port-of-spain sando tobago backoffice"`
	Department string `json:"department" validate:"required,oneof=care development dispatch escalations helpdesk retail sales"`
	Position   string `json:"position" validate:"required,oneof=csr developer dispatcher escalations helpdesk manager supervisor"`
	ReportsTo  string `json:"reports_to,omitempty" validate:"omitempty,object_id"`
}

// UserLoginInput dữ liệu đầu vào để đăng nhập
type UserLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
