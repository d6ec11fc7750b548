package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplist_web/internal/repository"
	"shoplist_web/internal/service"
)

// RawItemHandler 處理與無型別（純字串）項目相關的請求
type RawItemHandler struct {
	rawItemService *service.RawItemService
}

// NewRawItemHandler 創建一個新的 RawItemHandler 實例
func NewRawItemHandler(rawItemService *service.RawItemService) *RawItemHandler {
	return &RawItemHandler{rawItemService: rawItemService}
}

// Root 回應服務的歡迎訊息
func (h *RawItemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World! :)"})
}

// CreateItem 從 item 查詢參數讀取字串並附加到清單
// 這個服務的邊界就是字串，除了參數必須存在以外沒有其他驗證
func (h *RawItemHandler) CreateItem(c *gin.Context) {
	item, exists := c.GetQuery("item")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, h.rawItemService.CreateItem(item))
}

// ListItems 處理列出字串的請求，limit 可選
func (h *RawItemHandler) ListItems(c *gin.Context) {
	limit, ok := bindLimit(c)
	if !ok {
		return
	}

	if limit == nil {
		c.JSON(http.StatusOK, h.rawItemService.ListItems())
		return
	}
	c.JSON(http.StatusOK, h.rawItemService.FirstItems(*limit))
}

// GetItem 處理依索引取得單一字串的請求
// 404 的訊息帶有索引與目前的序列長度
func (h *RawItemHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_id must be an integer"})
		return
	}

	item, err := h.rawItemService.GetItem(itemID)
	if err != nil {
		var oor *repository.OutOfRangeError
		if errors.As(err, &oor) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Index %d out of range %d", oor.Index, oor.Length)})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
