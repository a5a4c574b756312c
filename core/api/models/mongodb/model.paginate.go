package models

// PaginateResult đại diện cho kết quả phân trang của một collection
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	Items     []T   `json:"items" bson:"items"`
}
