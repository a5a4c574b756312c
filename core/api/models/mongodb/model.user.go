// Package models - model người dùng nội bộ (User).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình nhân viên sử dụng hệ thống.
// Password luôn được lưu dưới dạng bcrypt hash và không bao giờ serialize ra ngoài.
// ReportsTo tham chiếu tới User quản lý trực tiếp.
type User struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Username   string              `json:"username" bson:"username" index:"unique"`
	Email      string              `json:"email" bson:"email" index:"unique"`
	FirstName  string              `json:"first_name" bson:"first_name"`
	LastName   string              `json:"last_name" bson:"last_name"`
	Password   string              `json:"-" bson:"password"`
	Site       string              `json:"site" bson:"site"`
	Department string              `json:"department" bson:"department" index:"single"`
	Position   string              `json:"position" bson:"position"`
	ReportsTo  *primitive.ObjectID `json:"reports_to,omitempty" bson:"reports_to,omitempty"`
	CreatedAt  int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64               `json:"updatedAt" bson:"updatedAt"`
}
