package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	router := newQuoteRouter(t)

	w := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Providers int    `json:"providers"`
		Countries int    `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Greater(t, resp.Providers, 0)
	assert.Greater(t, resp.Countries, 0)
}
