package utility

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnlarose/touchpoint-api/core/logger"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và ghi log thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetAppLogger().Errorf("Đã bắt lỗi panic: %v", err)
		}
	}()

	f()
}

// PrettyPrint in đẹp một interface dưới dạng JSON
// @params - interface cần in đẹp
// @returns - chuỗi JSON đẹp
func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// UnixMilli dùng để lấy mili giây của thời gian cho trước
// @params - thời gian
// @returns - mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
// @returns - timestamp hiện tại (tính bằng mili giây)
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về zero ObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// LogWarning ghi log cảnh báo với các thông tin bổ sung dạng key-value
func LogWarning(msg string, args ...interface{}) {
	fields := make(map[string]interface{})
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				fields[key] = args[i+1]
			}
		}
	}
	logger.GetAppLogger().WithFields(fields).Warn(msg)
}

// Describe mô tả kiểu và giá trị của interface, dùng khi debug
func Describe(t interface{}) {
	fmt.Printf("Interface type %T value %v\n", t, t)
}
