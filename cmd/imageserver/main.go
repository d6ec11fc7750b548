package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shoplist_web/internal/api"
	"shoplist_web/internal/config"
	"shoplist_web/internal/storage"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 啟動時載入並重新編碼圖片資產
	// 資產讀不到就無法提供任何服務，直接視為致命錯誤
	store, err := storage.NewImageStore(cfg.ImageServer.AssetPath)
	if err != nil {
		log.Fatalf("Failed to load image asset: %v", err)
	}

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupImageRoutes(r, store)

	// 啟動伺服器
	if err := r.Run(cfg.ImageServer.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
