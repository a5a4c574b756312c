package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnlarose/touchpoint-api/core/global"
)

// mustCollection lấy collection đã đăng ký trong registry.
// Panic nếu collection chưa được đăng ký vì đây là lỗi thứ tự khởi tạo,
// không phải lỗi runtime có thể phục hồi.
func mustCollection(name string) *mongo.Collection {
	col, exists := global.RegistryCollections.Get(name)
	if !exists {
		panic(fmt.Sprintf("collection %s chưa được đăng ký, kiểm tra thứ tự khởi tạo", name))
	}
	return col
}
