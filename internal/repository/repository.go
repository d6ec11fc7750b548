package repository

import "shoplist_web/internal/models"

type Repositories struct {
	Items    ItemSequence[models.Item]
	RawItems ItemSequence[string]
}

func NewRepositories() *Repositories {
	return &Repositories{
		Items:    NewMemorySequence[models.Item](),
		RawItems: NewMemorySequence[string](),
	}
}
