package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phone định nghĩa một số điện thoại của người liên hệ
type Phone struct {
	Category string `json:"category" bson:"category"` // home, mobile, office
	Number   string `json:"number" bson:"number"`
}

// Contact định nghĩa người liên hệ được ủy quyền trên tài khoản khách hàng.
// Collection contacts có thêm wildcard text index ($**) phục vụ tìm kiếm tự do,
// index này được tạo trực tiếp trong init vì không gắn vào một field cụ thể.
type Contact struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string             `json:"first_name" bson:"first_name"`
	LastName  string             `json:"last_name" bson:"last_name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	PhoneList []Phone            `json:"phone_list" bson:"phone_list"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
