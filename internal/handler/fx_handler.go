package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/dto"
	"github.com/caiofontes/remitscan/internal/fxrate"
	"github.com/caiofontes/remitscan/internal/service"
)

type FxHandler struct {
	source      fxrate.Source
	fxSvc       *service.FxService
	defaultFrom string
	defaultTo   string
}

func NewFxHandler(source fxrate.Source, fxSvc *service.FxService, defaultFrom, defaultTo string) *FxHandler {
	return &FxHandler{
		source:      source,
		fxSvc:       fxSvc,
		defaultFrom: defaultFrom,
		defaultTo:   defaultTo,
	}
}

// GetRate proxies one fresh daily-rate lookup. Responses are uncacheable so
// a repeat press of the refresh button always reflects a new upstream fetch.
func (h *FxHandler) GetRate(c *gin.Context) {
	var q dto.FxQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	from := strings.ToUpper(q.From)
	if from == "" {
		from = h.defaultFrom
	}
	to := strings.ToUpper(q.To)
	if to == "" {
		to = h.defaultTo
	}

	c.Header("Cache-Control", "no-store")

	snap, err := h.source.Latest(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, fxrate.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "FX provider error"})
		case errors.Is(err, fxrate.ErrPayload):
			c.JSON(http.StatusBadGateway, gin.H{"error": "invalid FX response"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "FX fetch failed"})
		}
		return
	}

	c.JSON(http.StatusOK, snap)
}

// GetTicker returns one rate row per corridor, live where the upstream
// answered and seed rates where it did not.
func (h *FxHandler) GetTicker(c *gin.Context) {
	var q dto.TickerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	c.Header("Cache-Control", "no-store")

	entries := h.fxSvc.Ticker(c.Request.Context(), strings.ToUpper(q.Active), q.Rate)
	c.JSON(http.StatusOK, gin.H{"data": entries})
}
