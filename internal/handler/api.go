package handler

import (
	"github.com/buttonicons/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db              *gorm.DB
	blocks          *service.BlockService
	renderer        *service.BlockRenderer
	defaultLanguage string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, defaultLanguage string) *API {
	return &API{
		db:              db,
		blocks:          service.NewBlockService(db),
		renderer:        service.NewBlockRenderer(),
		defaultLanguage: defaultLanguage,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
