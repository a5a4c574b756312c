package models

// Counter lưu trạng thái của bộ cấp số tuần tự.
// _id là tên scope, ví dụ "account_number" hoặc "case_number:80000001".
type Counter struct {
	ID  string `json:"id" bson:"_id"`
	Seq int64  `json:"seq" bson:"seq"`
}
