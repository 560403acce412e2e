package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/internal/interfaces/http/middleware"
	"pikxora.backend/internal/usecases"
	"pikxora.backend/pkg/jwt"
)

// testEnv wires real usecases over in-memory repositories behind the
// same route layout the server registers.
type testEnv struct {
	users    *userRepoStub
	profiles *profileRepoStub
	walls    *wallRepoStub
	projects *projectRepoStub
	team     *teamRepoStub
	conns    *connRepoStub
	jwt      *jwt.JWTService
	codec    *media.Codec
	router   *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    newUserRepoStub(),
		profiles: newProfileRepoStub(),
		walls:    newWallRepoStub(),
		projects: newProjectRepoStub(),
		team:     newTeamRepoStub(),
		conns:    newConnRepoStub(),
		jwt:      jwt.NewJWTService("test-secret", time.Minute, time.Hour),
		codec:    media.NewCodec(t.TempDir()),
	}

	uow := uowStub{}
	authUC := usecases.NewAuthUsecase(env.users, env.profiles, uow, env.jwt)
	profileUC := usecases.NewProfileUsecase(env.profiles)
	wallUC := usecases.NewWallUsecase(env.walls, env.profiles, env.users, env.projects, env.team, uow, env.codec, media.DefaultMaxImageMB)
	projectUC := usecases.NewProjectUsecase(env.projects, env.walls, env.codec, media.DefaultMaxImageMB)
	teamUC := usecases.NewTeamUsecase(env.team, env.walls, env.profiles, env.users)
	connUC := usecases.NewConnectionUsecase(env.conns, env.profiles)
	adminUC := usecases.NewAdminUsecase(env.profiles, env.users, env.walls)
	mediaUC := usecases.NewMediaUsecase(env.codec, media.DefaultMaxImageMB)

	authHandler := NewAuthHandler(authUC)
	profileHandler := NewProfileHandler(profileUC)
	wallHandler := NewWallHandler(wallUC)
	projectHandler := NewProjectHandler(projectUC)
	teamHandler := NewTeamHandler(teamUC)
	connHandler := NewConnectionHandler(connUC)
	adminHandler := NewAdminHandler(adminUC)
	mediaHandler := NewMediaHandler(mediaUC)

	r := gin.New()
	auth := middleware.AuthMiddleware(env.jwt)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.RefreshToken)
	v1.GET("/auth/me", auth, authHandler.Me)

	v1.GET("/profiles", profileHandler.List)
	v1.GET("/profiles/me", auth, profileHandler.Me)
	v1.PUT("/profiles/me", auth, profileHandler.UpdateMe)
	v1.GET("/profiles/:id", profileHandler.Get)

	v1.GET("/walls", wallHandler.ListPublished)
	v1.GET("/walls/my", auth, wallHandler.ListMine)
	v1.GET("/walls/:id", wallHandler.Get)
	v1.POST("/walls", auth, wallHandler.Create)
	v1.PUT("/walls/:id", auth, wallHandler.Update)
	v1.DELETE("/walls/:id", auth, wallHandler.Delete)
	v1.PUT("/walls/:id/view", wallHandler.IncrementView)
	v1.GET("/walls/:id/projects", wallHandler.ListProjects)
	v1.GET("/walls/:id/team", teamHandler.ListByWall)

	v1.POST("/projects", auth, projectHandler.Create)
	v1.PUT("/projects/:id", auth, projectHandler.Update)
	v1.DELETE("/projects/:id", auth, projectHandler.Delete)

	v1.POST("/team", auth, teamHandler.Add)
	v1.DELETE("/team/:id", auth, teamHandler.Remove)

	v1.POST("/connections", auth, connHandler.Create)
	v1.GET("/connections", auth, connHandler.List)
	v1.PUT("/connections/:id/status", auth, connHandler.UpdateStatus)

	v1.POST("/media", auth, mediaHandler.Upload)

	admin := v1.Group("/admin", auth, middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/verifications", adminHandler.ListVerifications)
	admin.PUT("/verifications/:id", adminHandler.DecideVerification)
	admin.GET("/stats", adminHandler.Stats)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type registeredAccount struct {
	Token     string
	ProfileID string
	UserID    string
}

// register creates an account through the real endpoint and returns its
// access token and ids.
func (e *testEnv) register(t *testing.T, email, name, role string) registeredAccount {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "s3cret-password",
		"name":     name,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
		Profile struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	return registeredAccount{
		Token:     resp.AccessToken,
		ProfileID: resp.Profile.ID,
		UserID:    resp.User.ID,
	}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
