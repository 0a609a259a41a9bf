package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
	"github.com/abnerteste26-bot/group-champs/internal/storage"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
	"github.com/abnerteste26-bot/group-champs/internal/team/repository"
	"github.com/abnerteste26-bot/group-champs/internal/team/service"
)

type tokens map[string]identity.Identity

func (t tokens) Resolve(_ context.Context, token string) (identity.Identity, error) {
	id, ok := t[token]
	if !ok {
		return identity.Identity{}, identity.ErrUnauthorized
	}
	return id, nil
}

func setupRouter(db *gorm.DB, resolver identity.Resolver) (*gin.Engine, *audit.Recorder) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	recorder := audit.NewRecorder(logger, time.Second, audit.NewStoreSink(db))
	svc := service.New(repository.New(db), db, storage.NewPermissive("https://cdn.example.com"), recorder, logger)

	r := gin.New()
	r.Use(middleware.Authenticate(resolver, logger))
	RegisterRoutes(r, svc, logger)
	return r, recorder
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIntegration_TeamRoutes(t *testing.T) {
	db := dbtest.Open(t)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	team := dbtest.SeedMember(t, db, champ.Groups["A"], "Leões")
	dbtest.SeedMember(t, db, champ.Groups["B"], "Tigres")

	router, recorder := setupRouter(db, tokens{
		"admin": {Subject: "admin-1", Role: identity.RoleAdmin},
		"owner": {Subject: team.OwnerID, Role: identity.RoleTeam, TeamID: team.ID},
	})

	t.Run("list is public", func(t *testing.T) {
		w := do(router, http.MethodGet, "/championships/"+champ.ID+"/teams", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string][]teamModel.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response["teams"], 2)
		assert.Equal(t, "Leões", response["teams"][0].Name)
	})

	t.Run("delete requires identity", func(t *testing.T) {
		w := do(router, http.MethodDelete, "/teams/"+team.ID, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("owner cannot delete", func(t *testing.T) {
		w := do(router, http.MethodDelete, "/teams/"+team.ID, "owner")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin deletes and the deletion is audited", func(t *testing.T) {
		w := do(router, http.MethodDelete, "/teams/"+team.ID, "admin")
		require.Equal(t, http.StatusOK, w.Code)

		var response teamModel.DeleteTeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, champ.Groups["A"].ID, response.GroupID)

		w = do(router, http.MethodGet, "/teams/"+team.ID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		recorder.Wait()
		var entries int64
		require.NoError(t, db.Model(&audit.Entry{}).Where("action = ?", audit.ActionDeleteTeam).Count(&entries).Error)
		assert.Equal(t, int64(1), entries)
	})
}
