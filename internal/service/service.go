package service

import (
	"shoplist_web/internal/repository"
)

type Services struct {
	Item    *ItemService
	RawItem *RawItemService
}

func NewServices(repos *repository.Repositories) *Services {
	itemService := NewItemService(repos.Items)
	rawItemService := NewRawItemService(repos.RawItems)
	return &Services{
		Item:    itemService,
		RawItem: rawItemService,
	}
}
