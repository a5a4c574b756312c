package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map[string]interface{} thông qua bson marshal.
// Giữ nguyên các bson tag của struct nên map trả về dùng đúng tên field trong MongoDB.
//
// Tham số:
// - s: struct cần chuyển đổi
//
// Trả về:
// - map[string]interface{}: map kết quả
// - error: lỗi nếu marshal/unmarshal thất bại
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi marshal struct: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("lỗi khi unmarshal về map: %w", err)
	}

	return result, nil
}
