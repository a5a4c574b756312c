package main

import (
	"github.com/sirupsen/logrus"

	"github.com/bnlarose/touchpoint-api/core/global"
)

// InitRegistry đăng ký các collection vào registry toàn cục.
// Service lấy collection từ registry theo tên thay vì giữ tham chiếu
// database riêng.
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	collections := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Contacts,
		global.MongoDB_ColNames.Packages,
		global.MongoDB_ColNames.Accounts,
		global.MongoDB_ColNames.CaseCategories,
		global.MongoDB_ColNames.Counters,
	}

	for _, name := range collections {
		collection := db.Collection(name)
		if _, err := global.RegistryCollections.Register(name, collection); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}

	logrus.Infof("Registered %d collections", len(collections))
}
