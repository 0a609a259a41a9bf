package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
)

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Check)
	return router
}

func check(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := dbtest.Open(t)
		dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
		router := setupRouter(New(db, zap.NewNop().Sugar()))

		w := check(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, int64(1), resp.ActiveChampionships)
	})

	t.Run("database is unavailable", func(t *testing.T) {
		db := dbtest.Open(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
		router := setupRouter(New(db, zap.NewNop().Sugar()))

		w := check(router)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	})

	t.Run("multiple concurrent health checks", func(t *testing.T) {
		db := dbtest.Open(t)
		router := setupRouter(New(db, zap.NewNop().Sugar()))

		// Collect results in channel to avoid unsafe assert calls from goroutines
		results := make(chan int, 10)
		for i := 0; i < 10; i++ {
			go func() {
				results <- check(router).Code
			}()
		}

		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, <-results, "health check should return 200 OK")
		}
	})
}
