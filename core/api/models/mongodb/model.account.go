package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address định nghĩa địa chỉ lắp đặt dịch vụ của tài khoản
type Address struct {
	Street string `json:"street" bson:"street"`
	City   string `json:"city" bson:"city"`
	Island string `json:"island" bson:"island"`
}

// ActionRequest là nút sâu nhất của cây case: một yêu cầu xử lý được gán cho
// một bộ phận. ClaimedBy chỉ có giá trị khi đã có nhân viên nhận xử lý.
type ActionRequest struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Created     int64               `json:"created" bson:"created"`
	Due         int64               `json:"due" bson:"due"`
	RequestedBy primitive.ObjectID  `json:"requested_by" bson:"requested_by"`
	AssignedTo  string              `json:"assigned_to" bson:"assigned_to"` // department
	ClaimedBy   *primitive.ObjectID `json:"claimed_by,omitempty" bson:"claimed_by,omitempty"`
	RequestType string              `json:"request_type" bson:"request_type"`
	Details     string              `json:"details" bson:"details"`
	Status      string              `json:"status" bson:"status"`
}

// Interaction ghi lại một lần tiếp xúc với khách hàng trong phạm vi một case
type Interaction struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date           int64              `json:"date" bson:"date"`
	Channel        string             `json:"channel" bson:"channel"`
	InteractedWith string             `json:"interacted_with" bson:"interacted_with"`
	Contact        string             `json:"contact" bson:"contact"`
	RecordedBy     primitive.ObjectID `json:"recorded_by" bson:"recorded_by"`
	Details        string             `json:"details" bson:"details"`
	ActionRequests []ActionRequest    `json:"action_requests" bson:"action_requests"`
}

// Case là hồ sơ xử lý một vấn đề của khách hàng, nhúng trực tiếp trong Account.
// CaseNumber tuần tự theo từng account, bắt đầu từ 1.
type Case struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CaseNumber   int64              `json:"case_number" bson:"case_number"`
	Title        string             `json:"title" bson:"title"`
	Lob          string             `json:"lob" bson:"lob"`
	Category     primitive.ObjectID `json:"category" bson:"category"`
	Opened       int64              `json:"opened" bson:"opened"`
	LastUpdated  int64              `json:"last_updated" bson:"last_updated"`
	OpenedBy     primitive.ObjectID `json:"opened_by" bson:"opened_by"`
	Status       string             `json:"status" bson:"status"`
	Interactions []Interaction      `json:"interactions" bson:"interactions"`
}

// Account là aggregate root của cây case: Account -> Case -> Interaction -> ActionRequest.
// AccountNumber được cấp tự động tăng dần từ mốc 80000000.
// Mọi node nhúng đều có ObjectID riêng để có thể định vị trực tiếp khi cập nhật.
type Account struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	AccountNumber int64                `json:"account_number" bson:"account_number" index:"unique"`
	Address       Address              `json:"address" bson:"address"`
	CreatedDate   int64                `json:"created_date" bson:"created_date"`
	ServiceList   []primitive.ObjectID `json:"service_list" bson:"service_list"`
	Contacts      []primitive.ObjectID `json:"contacts" bson:"contacts"`
	Cases         []Case               `json:"cases" bson:"cases"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}
