package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnlarose/touchpoint-api/config"
	"github.com/bnlarose/touchpoint-api/core/notification"
	"github.com/bnlarose/touchpoint-api/core/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users          string // Tên collection cho người dùng nội bộ
	Contacts       string // Tên collection cho người liên hệ của khách hàng
	Packages       string // Tên collection cho gói dịch vụ
	Accounts       string // Tên collection cho tài khoản khách hàng (chứa cây case)
	CaseCategories string // Tên collection cho danh mục case
	Counters       string // Tên collection cho bộ cấp số tuần tự
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{} // Tên các collection

// EscalationHub là kênh thông báo in-memory cho các action request mới
var EscalationHub *notification.Hub

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
