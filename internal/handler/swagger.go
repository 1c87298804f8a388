package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// swaggerDocPath is the hand-maintained OpenAPI document, relative to the
// server's working directory.
const swaggerDocPath = "docs/swagger.json"

// SetupSwagger mounts the API docs under /swagger. One wildcard route serves
// both the UI and the document: gin's routing tree rejects a static sibling
// of a catch-all, so doc.json must be dispatched inside the handler.
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", func(c *gin.Context) {
		switch c.Param("any") {
		case "/doc.json", "doc.json":
			c.File(swaggerDocPath)
		default:
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIHTML))
		}
	})
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>RemitScan - API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout"
    });
  </script>
</body>
</html>`
