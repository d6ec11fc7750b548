package service

import (
	"shoplist_web/internal/repository"
)

// RawItemService 管理無型別（純字串）的項目清單
type RawItemService struct {
	items repository.ItemSequence[string]
}

func NewRawItemService(items repository.ItemSequence[string]) *RawItemService {
	return &RawItemService{items: items}
}

// CreateItem 將字串附加到序列尾端，回傳附加後的完整清單
func (s *RawItemService) CreateItem(item string) []string {
	return s.items.Append(item)
}

// ListItems 回傳目前的完整清單
func (s *RawItemService) ListItems() []string {
	return s.items.All()
}

// FirstItems 回傳清單最前面的 limit 個項目
func (s *RawItemService) FirstItems(limit int) []string {
	return s.items.First(limit)
}

// GetItem 依索引取得單一項目
func (s *RawItemService) GetItem(index int) (string, error) {
	return s.items.Get(index)
}
