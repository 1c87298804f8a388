package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/caiofontes/remitscan/internal/fxrate"
	"github.com/caiofontes/remitscan/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// MapError converts a domain error into a status code and response body.
func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrUnknownCountry):
		return http.StatusNotFound, ErrorResponse{Error: "destination country not supported"}
	case errors.Is(err, fxrate.ErrUpstream):
		return http.StatusBadGateway, ErrorResponse{Error: "FX provider error"}
	case errors.Is(err, fxrate.ErrPayload):
		return http.StatusBadGateway, ErrorResponse{Error: "invalid FX response"}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// ErrorHandler converts errors handlers attach via c.Error into JSON, so no
// failure falls through to the client unformatted.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
