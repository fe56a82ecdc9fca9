package middleware

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/database"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.CreateTables(db))
	t.Cleanup(func() { db.Close() })

	portfolioRepo = repository.NewPortfolioRepository(db)

	setUser := func(c *gin.Context) { c.Set("userId", "user-1") }
	router := gin.New()
	router.POST("/api/portfolio", setUser, CreatePortfolioEntry)
	router.GET("/api/portfolio", setUser, GetPortfolio)
	return router
}

func postPortfolioEntry(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// Una cantidad de 0 es válida: el monto es un decimal >= 0, no un campo
// obligatorio distinto de cero.
func TestCreatePortfolioEntryAcceptsZeroAmount(t *testing.T) {
	router := newPortfolioTestRouter(t)

	w := postPortfolioEntry(router, `{"coinId":"bitcoin","amount":0,"purchasePrice":100}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Entry models.PortfolioEntry `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Entry.ID)
	assert.Equal(t, 0.0, resp.Entry.Amount)

	// La entrada queda persistida
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Entries []models.PortfolioEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Entries, 1)
	assert.Equal(t, "bitcoin", list.Entries[0].CoinID)
	assert.Equal(t, 0.0, list.Entries[0].Amount)
}

func TestCreatePortfolioEntryRejectsNegativeAmount(t *testing.T) {
	router := newPortfolioTestRouter(t)

	w := postPortfolioEntry(router, `{"coinId":"bitcoin","amount":-1,"purchasePrice":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePortfolioEntryRequiresCoinID(t *testing.T) {
	router := newPortfolioTestRouter(t)

	w := postPortfolioEntry(router, `{"amount":1,"purchasePrice":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
