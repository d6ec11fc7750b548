package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplist_web/internal/models"
	"shoplist_web/internal/service"
)

// ItemHandler 處理與具型別購物清單項目相關的請求
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler 創建一個新的 ItemHandler 實例
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItem 處理新增項目的請求，回應附加後的完整清單
func (h *ItemHandler) CreateItem(c *gin.Context) {
	// price 和 quantity 用指標來區分「缺少欄位」和「值為零」
	var input struct {
		Name        string   `json:"name" binding:"required"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" binding:"required"`
		Quantity    *int     `json:"quantity"`
	}
	// 解析並驗證請求體，驗證失敗時不得改動序列
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item := models.Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Quantity:    1,
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}

	c.JSON(http.StatusOK, h.itemService.CreateItem(item))
}

// ListItems 處理列出項目的請求，limit 可選，用於限制回應的項目數量
func (h *ItemHandler) ListItems(c *gin.Context) {
	limit, ok := bindLimit(c)
	if !ok {
		return
	}

	if limit == nil {
		c.JSON(http.StatusOK, h.itemService.ListItems())
		return
	}
	c.JSON(http.StatusOK, h.itemService.FirstItems(*limit))
}

// GetItem 處理依索引取得單一項目的請求
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_id must be an integer"})
		return
	}

	item, err := h.itemService.GetItem(itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Item %d not found", itemID)})
		return
	}

	c.JSON(http.StatusOK, item)
}

// bindLimit 解析可選的 limit 查詢參數
// 參數不存在時回傳 nil；無效時直接回應 400 並回傳 ok=false
func bindLimit(c *gin.Context) (*int, bool) {
	raw, exists := c.GetQuery("limit")
	if !exists {
		return nil, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer"})
		return nil, false
	}
	if limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be a non-negative integer"})
		return nil, false
	}

	return &limit, true
}
