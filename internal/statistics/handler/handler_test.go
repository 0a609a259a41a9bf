package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/model"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/service"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) GetChampionshipStatistics(
	ctx context.Context, championshipID string,
) (*model.ChampionshipStatisticsResponse, error) {
	args := m.Called(championshipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChampionshipStatisticsResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/championships/:id/statistics", New(svc, zap.NewNop().Sugar()).GetChampionshipStatistics)
	return router
}

func TestHandler_GetChampionshipStatistics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)

		mockSvc.On("GetChampionshipStatistics", "c1").Return(&model.ChampionshipStatisticsResponse{
			ChampionshipID: "c1",
			Teams:          model.TeamStatistics{Total: 16, Active: 15, Groups: 4},
			Matches:        model.MatchStatistics{Total: 24, Confirmed: 10, Goals: 31, AverageGoalsPerMatch: 3.1},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/championships/c1/statistics", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp model.ChampionshipStatisticsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 16, resp.Teams.Total)
		assert.Equal(t, 31, resp.Matches.Goals)
		assert.InDelta(t, 3.1, resp.Matches.AverageGoalsPerMatch, 0.001)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)

		mockSvc.On("GetChampionshipStatistics", "missing").Return(nil, championshipModel.ErrChampionshipNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/championships/missing/statistics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}
