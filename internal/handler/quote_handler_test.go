package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiofontes/remitscan/internal/quote"
	"github.com/caiofontes/remitscan/internal/service"
)

type quoteListResponse struct {
	Data []quote.Quote     `json:"data"`
	Meta service.QuoteMeta `json:"meta"`
}

func getQuotes(t *testing.T, router *gin.Engine, target string) (int, quoteListResponse) {
	t.Helper()
	w := doGet(router, target)
	var resp quoteListResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestQuoteHandler_GetQuotes(t *testing.T) {
	router := newQuoteRouter(t)

	t.Run("happy: defaults to 500 USD over bank, balanced", func(t *testing.T) {
		code, resp := getQuotes(t, router, "/api/quotes?country=BR&weekend=false")
		require.Equal(t, http.StatusOK, code)

		assert.Len(t, resp.Data, 5, "paypal supports debit only")
		assert.Equal(t, 500.0, resp.Meta.AmountUSD)
		assert.InDelta(t, 5.3, resp.Meta.MidRate, 1e-12)
		assert.Equal(t, quote.PrefBalanced, resp.Meta.Preference)
		assert.False(t, resp.Meta.Weekend)

		for _, q := range resp.Data {
			assert.Equal(t, "BR", q.CountryCode)
			assert.NotEmpty(t, q.ETALabel)
			assert.GreaterOrEqual(t, q.ReceiveAmount, 0.0)
			assert.LessOrEqual(t, q.CustomerRate, q.MidRate)
		}
	})

	t.Run("happy: cheapest puts the best payout first", func(t *testing.T) {
		code, resp := getQuotes(t, router, "/api/quotes?country=BR&method=bank&amount=500&sort=cheapest&weekend=false")
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, resp.Data)

		assert.Equal(t, "wise", resp.Data[0].ProviderID)
		for i := 1; i < len(resp.Data); i++ {
			assert.GreaterOrEqual(t, resp.Data[i-1].ReceiveAmount, resp.Data[i].ReceiveAmount)
		}
	})

	t.Run("happy: debit corridor includes paypal", func(t *testing.T) {
		code, resp := getQuotes(t, router, "/api/quotes?country=BR&method=debit&weekend=false")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, resp.Data, 6)
	})

	t.Run("happy: weekend flag reduces every payout", func(t *testing.T) {
		_, weekday := getQuotes(t, router, "/api/quotes?country=MX&method=cash&amount=300&sort=cheapest&weekend=false")
		_, weekend := getQuotes(t, router, "/api/quotes?country=MX&method=cash&amount=300&sort=cheapest&weekend=true")
		require.NotEmpty(t, weekday.Data)
		require.Len(t, weekend.Data, len(weekday.Data))

		byID := make(map[string]float64, len(weekday.Data))
		for _, q := range weekday.Data {
			byID[q.ProviderID] = q.ReceiveAmount
		}
		for _, q := range weekend.Data {
			assert.Less(t, q.ReceiveAmount, byID[q.ProviderID])
		}
	})

	t.Run("happy: zero amount yields zero-receive quotes", func(t *testing.T) {
		code, resp := getQuotes(t, router, "/api/quotes?country=BR&amount=0&weekend=false")
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, resp.Data)
		for _, q := range resp.Data {
			assert.Equal(t, 0.0, q.ReceiveAmount)
		}
	})

	t.Run("happy: mid rate override", func(t *testing.T) {
		code, resp := getQuotes(t, router, "/api/quotes?country=BR&mid_rate=5.55&weekend=false")
		require.Equal(t, http.StatusOK, code)
		assert.InDelta(t, 5.55, resp.Meta.MidRate, 1e-12)
	})

	t.Run("bad: unknown country", func(t *testing.T) {
		w := doGet(router, "/api/quotes?country=ZZ")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("bad: missing country", func(t *testing.T) {
		w := doGet(router, "/api/quotes")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: invalid method", func(t *testing.T) {
		w := doGet(router, "/api/quotes?country=BR&method=wire")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: invalid sort", func(t *testing.T) {
		w := doGet(router, "/api/quotes?country=BR&sort=random")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: negative amount", func(t *testing.T) {
		w := doGet(router, "/api/quotes?country=BR&amount=-50")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
