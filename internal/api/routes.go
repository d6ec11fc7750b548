package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shoplist_web/internal/api/handlers"
	"shoplist_web/internal/middleware"
	"shoplist_web/internal/service"
	"shoplist_web/internal/storage"
)

// SetupItemRoutes 設置具型別項目服務的路由
func SetupItemRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	itemHandler := handlers.NewItemHandler(services.Item)

	useCommon(r, "itemserver")

	// 項目相關
	r.POST("/items", itemHandler.CreateItem)       // 新增項目
	r.GET("/items", itemHandler.ListItems)         // 獲取項目列表
	r.GET("/items/:item_id", itemHandler.GetItem)  // 依索引獲取項目
}

// SetupRawItemRoutes 設置無型別項目服務的路由
func SetupRawItemRoutes(r *gin.Engine, services *service.Services) {
	rawItemHandler := handlers.NewRawItemHandler(services.RawItem)

	useCommon(r, "rawitemserver")

	r.GET("/", rawItemHandler.Root)                   // 歡迎訊息
	r.POST("/items", rawItemHandler.CreateItem)       // 新增字串項目
	r.GET("/items", rawItemHandler.ListItems)         // 獲取字串列表
	r.GET("/items/:item_id", rawItemHandler.GetItem)  // 依索引獲取字串
}

// SetupImageRoutes 設置圖片服務的路由
func SetupImageRoutes(r *gin.Engine, store *storage.ImageStore) {
	imageHandler := handlers.NewImageHandler(store)

	useCommon(r, "imageserver")

	r.GET("/", imageHandler.Root)          // 歡迎訊息
	r.GET("/image", imageHandler.GetImage) // PNG 圖片串流
}

// useCommon 掛載所有服務共用的中間件與端點
// 必須在註冊各服務自己的路由之前呼叫
func useCommon(r *gin.Engine, name string) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(name))

	// Prometheus 指標端點
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"detail": "Not Found",
		})
	})
}
