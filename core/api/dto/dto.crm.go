package dto

// PhoneInput một số điện thoại của người liên hệ
type PhoneInput struct {
	Category string `json:"category" validate:"required,oneof=home mobile office"`
	Number   string `json:"number" validate:"required"`
}

// ContactCreateInput dữ liệu đầu vào để tạo người liên hệ
type ContactCreateInput struct {
	FirstName string       `json:"first_name" validate:"required,no_xss"`
	LastName  string       `json:"last_name" validate:"required,no_xss"`
	Email     string       `json:"email" validate:"required,email"`
	PhoneList []PhoneInput `json:"phone_list" validate:"omitempty,dive"`
}

// PackageCreateInput dữ liệu đầu vào để tạo gói dịch vụ
type PackageCreateInput struct {
	Name  string  `json:"name" validate:"required,no_xss"`
	Lob   string  `json:"lob" validate:"required,oneof=care internet landline mobile video"`
	Price float64 `json:"price" validate:"gte=0"`
}

// CaseCategoryCreateInput dữ liệu đầu vào để tạo danh mục case
type CaseCategoryCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
	Lob  string `json:"lob" validate:"required,oneof=care internet landline mobile video"`
}

// AddressInput địa chỉ lắp đặt dịch vụ
type AddressInput struct {
	Street string `json:"street" validate:"required,no_xss"`
	City   string `json:"city" validate:"required,no_xss"`
	Island string `json:"island" validate:"required,no_xss"`
}

// AccountCreateInput dữ liệu đầu vào để tạo tài khoản khách hàng.
// AccountNumber không nằm trong input vì được bộ cấp số tự sinh.
type AccountCreateInput struct {
	Address     AddressInput `json:"address" validate:"required"`
	ServiceList []string     `json:"service_list" validate:"omitempty,dive,object_id"`
	Contacts    []string     `json:"contacts" validate:"omitempty,dive,object_id"`
}
