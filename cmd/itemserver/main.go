package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shoplist_web/internal/api"
	"shoplist_web/internal/config"
	"shoplist_web/internal/repository"
	"shoplist_web/internal/service"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化記憶體內的項目序列
	// 序列在這裡建立一次，之後一路傳給 handlers，不使用全域變數
	repos := repository.NewRepositories()

	// 初始化服務
	services := service.NewServices(repos)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupItemRoutes(r, services)

	// 啟動伺服器
	if err := r.Run(cfg.ItemServer.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
