package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/catalog"
)

// CatalogHandler exposes the static provider and corridor tables; clients
// use them to populate the comparison form.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.Providers})
}

func (h *CatalogHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.Countries})
}
