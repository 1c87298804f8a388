package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/catalog"
)

// Health reports liveness plus the loaded catalog sizes. There is no
// database to ping; the catalogs are in-process constants.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"providers": len(catalog.Providers),
		"countries": len(catalog.Countries),
	})
}
