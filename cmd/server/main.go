package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/database"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// mainThread khởi tạo và chạy Fiber server
func mainThread() {
	app := InitFiberApp()

	log := logger.GetAppLogger()
	address := global.ServerConfig.Address

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Dọn dẹp tài nguyên khi nhận tín hiệu dừng
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log := logger.GetAppLogger()
		log.Info("Shutting down...")

		if global.EscalationHub != nil {
			global.EscalationHub.Close()
		}
		if global.MongoDB_Session != nil {
			if err := database.CloseInstance(global.MongoDB_Session); err != nil {
				log.WithError(err).Warn("Error closing MongoDB connection")
			}
		}
		os.Exit(0)
	}()

	// Chạy Fiber server trên main thread
	mainThread()
}
