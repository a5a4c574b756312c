package dto

// CaseCreateInput dữ liệu đầu vào để mở case mới trên một tài khoản.
// Người mở case được lấy từ token xác thực, không nằm trong input.
type CaseCreateInput struct {
	Title    string `json:"title" validate:"required,no_xss"`
	Lob      string `json:"lob" validate:"required,oneof=care internet landline mobile video"`
	Category string `json:"category" validate:"required,object_id"`
}

// InteractionCreateInput dữ liệu đầu vào để ghi nhận một lần tiếp xúc khách hàng.
// InteractedWith là người đã trao đổi, Contact là đầu mối liên lạc đã dùng.
type InteractionCreateInput struct {
	Channel        string `json:"channel" validate:"required,oneof=chat email phone social walkin"`
	InteractedWith string `json:"interacted_with" validate:"required,no_xss"`
	Contact        string `json:"contact" validate:"required,no_xss"`
	Details        string `json:"details" validate:"required,no_xss"`
}

// ActionRequestCreateInput dữ liệu đầu vào để tạo yêu cầu xử lý trong một interaction
type ActionRequestCreateInput struct {
	Due         int64  `json:"due" validate:"required"`
	AssignedTo  string `json:"assigned_to" validate:"required,oneof=care development dispatch escalations helpdesk retail sales"`
	RequestType string `json:"request_type" validate:"required,oneof=callback resolution modification investigation"`
	Details     string `json:"details" validate:"required,no_xss"`
}

// ActionRequestStatusInput dữ liệu đầu vào để đổi trạng thái một action request
type ActionRequestStatusInput struct {
	Status string `json:"status" validate:"required,oneof=open resolving escalated closed"`
}
