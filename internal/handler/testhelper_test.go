package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/fxrate"
	"github.com/caiofontes/remitscan/internal/middleware"
	"github.com/caiofontes/remitscan/internal/service"
)

// newFxRouter wires the fx endpoints against a fake upstream.
func newFxRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := fxrate.NewClient(upstreamURL, 2*time.Second)
	fxSvc := service.NewFxService(client)
	h := NewFxHandler(client, fxSvc, "USD", "BRL")

	router := gin.New()
	router.GET("/api/fx", h.GetRate)
	router.GET("/api/fx/ticker", h.GetTicker)
	return router
}

// newQuoteRouter wires the quote and catalog endpoints against the real
// in-memory catalogs.
func newQuoteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	quoteHandler := NewQuoteHandler(service.NewQuoteService())
	catalogHandler := NewCatalogHandler()

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/api/quotes", quoteHandler.GetQuotes)
	router.GET("/api/providers", catalogHandler.GetProviders)
	router.GET("/api/countries", catalogHandler.GetCountries)
	router.GET("/health", Health)
	return router
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}
