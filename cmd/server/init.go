package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnlarose/touchpoint-api/config"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/database"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/notification"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initNotificationHub()  // Khởi tạo kênh thông báo escalation
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Contacts = "contacts"
	global.MongoDB_ColNames.Packages = "packages"
	global.MongoDB_ColNames.Accounts = "accounts"
	global.MongoDB_ColNames.CaseCategories = "casecategories"
	global.MongoDB_ColNames.Counters = "counters"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, object_id)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index theo tag trên model
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), models.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), models.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Packages), models.Package{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Accounts), models.Account{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CaseCategories), models.CaseCategory{})

	// Wildcard text index cho tìm kiếm contact trên mọi trường chuỗi.
	// Không biểu diễn được qua tag trên struct nên tạo trực tiếp.
	createContactTextIndex(db.Collection(global.MongoDB_ColNames.Contacts))

	logrus.Info("Ensured indexes")
}

// createContactTextIndex tạo wildcard text index cho collection contacts
func createContactTextIndex(collection *mongo.Collection) {
	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "$**", Value: "text"}},
	})
	if err != nil {
		logrus.Warnf("Failed to create contact text index: %v", err)
	}
}

// Hàm khởi tạo kênh thông báo escalation
func initNotificationHub() {
	global.EscalationHub = notification.NewHub()
	logrus.Info("Initialized escalation hub")
}
