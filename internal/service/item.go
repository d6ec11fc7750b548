package service

import (
	"shoplist_web/internal/models"
	"shoplist_web/internal/repository"
)

// ItemService 管理具型別的購物清單項目
type ItemService struct {
	items repository.ItemSequence[models.Item]
}

func NewItemService(items repository.ItemSequence[models.Item]) *ItemService {
	return &ItemService{items: items}
}

// CreateItem 將項目附加到序列尾端，回傳附加後的完整清單
func (s *ItemService) CreateItem(item models.Item) []models.Item {
	return s.items.Append(item)
}

// ListItems 回傳目前的完整清單
func (s *ItemService) ListItems() []models.Item {
	return s.items.All()
}

// FirstItems 回傳清單最前面的 limit 個項目
func (s *ItemService) FirstItems(limit int) []models.Item {
	return s.items.First(limit)
}

// GetItem 依索引取得單一項目
func (s *ItemService) GetItem(index int) (models.Item, error) {
	return s.items.Get(index)
}
