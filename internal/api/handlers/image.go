package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplist_web/internal/storage"
)

// ImageHandler 處理與圖片服務相關的請求
type ImageHandler struct {
	store *storage.ImageStore
}

// NewImageHandler 創建一個新的 ImageHandler 實例
func NewImageHandler(store *storage.ImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

// Root 回應服務的歡迎訊息
func (h *ImageHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Meeeeh"})
}

// GetImage 以 image/png 回應啟動時快取的圖片位元組
func (h *ImageHandler) GetImage(c *gin.Context) {
	c.Data(http.StatusOK, "image/png", h.store.PNG())
}
