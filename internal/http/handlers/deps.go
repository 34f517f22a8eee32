package handlers

import (
	"github.com/jmoiron/sqlx"

	"pricepeek/internal/config"
	"pricepeek/internal/repos"
	"pricepeek/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	catalogSvc := services.NewCatalogService(cfg.CatalogPath)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
	}
}
