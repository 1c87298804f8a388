package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/config"
	"github.com/caiofontes/remitscan/internal/fxrate"
	"github.com/caiofontes/remitscan/internal/middleware"
	"github.com/caiofontes/remitscan/internal/service"
)

// NewRouter builds the fully wired engine the server binary runs.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	router.GET("/health", Health)
	SetupSwagger(router)

	fxClient := fxrate.NewClient(cfg.FxBaseURL, cfg.FxTimeout)
	quoteSvc := service.NewQuoteService()
	fxSvc := service.NewFxService(fxClient)

	fxHandler := NewFxHandler(fxClient, fxSvc, cfg.FxDefaultFrom, cfg.FxDefaultTo)
	quoteHandler := NewQuoteHandler(quoteSvc)
	catalogHandler := NewCatalogHandler()

	api := router.Group("/api")
	{
		api.GET("/fx", fxHandler.GetRate)
		api.GET("/fx/ticker", fxHandler.GetTicker)
		api.GET("/quotes", quoteHandler.GetQuotes)
		api.GET("/providers", catalogHandler.GetProviders)
		api.GET("/countries", catalogHandler.GetCountries)
	}

	return router
}
