package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/repository"
	"github.com/abnerteste26-bot/group-champs/internal/clock/service"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
)

type adminOnly struct{}

func (adminOnly) Resolve(_ context.Context, token string) (identity.Identity, error) {
	if token != "admin" {
		return identity.Identity{}, identity.ErrUnauthorized
	}
	return identity.Identity{Subject: "admin-1", Role: identity.RoleAdmin}, nil
}

func TestRoutes_ClockLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC))
	logger := zap.NewNop().Sugar()

	r := gin.New()
	r.Use(middleware.Authenticate(adminOnly{}, logger))
	RegisterRoutes(r, service.New(repository.New(db), db, fake, logger), logger)

	call := func(method, path string, authed bool) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/championships/"+champ.ID+path, nil)
		if authed {
			req.Header.Set("Authorization", "Bearer admin")
		}
		r.ServeHTTP(w, req)
		return w
	}

	w := call(http.MethodGet, "/clock", false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(http.MethodPost, "/clock/start", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(http.MethodPost, "/clock/start", true)
	require.Equal(t, http.StatusOK, w.Code)

	fake.Advance(5 * time.Second)
	w = call(http.MethodPost, "/clock/pause", true)
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.ClockResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "00:00:05", resp.Display)

	w = call(http.MethodPost, "/clock/pause", true)
	assert.Equal(t, http.StatusConflict, w.Code)
	var errResp httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "ALREADY_PROCESSED", errResp.Error.Code)

	w = call(http.MethodGet, "/clock", false)
	require.Equal(t, http.StatusOK, w.Code)
}
