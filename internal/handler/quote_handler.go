package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/caiofontes/remitscan/internal/catalog"
	"github.com/caiofontes/remitscan/internal/dto"
	"github.com/caiofontes/remitscan/internal/quote"
	"github.com/caiofontes/remitscan/internal/service"
)

// defaultAmountUSD matches the comparison form's initial amount.
const defaultAmountUSD = 500

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var q dto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	method := catalog.Method(q.Method)
	if q.Method == "" {
		method = catalog.MethodBank
	}

	pref := quote.Preference(q.Sort)
	if q.Sort == "" {
		pref = quote.PrefBalanced
	}

	amount := float64(defaultAmountUSD)
	if q.Amount != nil {
		amount = *q.Amount
	}

	quotes, meta, err := h.svc.Quotes(service.QuoteParams{
		CountryCode: strings.ToUpper(q.Country),
		Method:      method,
		AmountUSD:   amount,
		MidRate:     q.MidRate,
		Weekend:     q.Weekend,
		Preference:  pref,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownCountry) {
			c.JSON(http.StatusNotFound, gin.H{"error": "destination country not supported"})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": quotes,
		"meta": meta,
	})
}
