package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetCoinsRejectsUnsupportedCurrency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/coins", GetCoins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/coins?vs_currency=ars", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ars")
}

func TestGetCurrencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/currencies", GetCurrencies)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, symbol := range []string{"$", "€", "£", "¥", "₹"} {
		assert.Contains(t, w.Body.String(), symbol)
	}
}

func TestRespondFetchErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"rate limit => 429", services.ErrRateLimited, http.StatusTooManyRequests},
		{"not found => 404", services.ErrNotFound, http.StatusNotFound},
		{"falla genérica => 503", fmt.Errorf("error obteniendo /coins/markets: status 500"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondFetchError(c, tt.err)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
