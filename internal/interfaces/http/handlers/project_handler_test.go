package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func createWall(t *testing.T, env *testEnv, token, title string) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/walls", token, gin.H{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wall struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wall))
	return wall.ID
}

func TestProjectHandler_CreateAndOrdering(t *testing.T) {
	env := newTestEnv(t)
	acct := env.register(t, "studio@pikxora.io", "Pixel Forge", "studio")
	wallID := createWall(t, env, acct.Token, "Showcase")

	for i, title := range []string{"Third", "First", "Second"} {
		order := []int{2, 0, 1}[i]
		w := env.do(t, http.MethodPost, "/api/v1/projects", acct.Token, gin.H{
			"wall_id":     wallID,
			"title":       title,
			"order_index": order,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, "/api/v1/walls/"+wallID+"/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Title      string `json:"title"`
			OrderIndex int    `json:"order_index"`
		} `json:"items"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Items, 3)
	require.Equal(t, "First", resp.Items[0].Title)
	require.Equal(t, "Second", resp.Items[1].Title)
	require.Equal(t, "Third", resp.Items[2].Title)
}

func TestProjectHandler_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "owner@pikxora.io", "Owner Studio", "studio")
	other := env.register(t, "other@pikxora.io", "Other Studio", "studio")
	wallID := createWall(t, env, owner.Token, "Mine")

	// only the wall owner may attach projects
	w := env.do(t, http.MethodPost, "/api/v1/projects", other.Token, gin.H{
		"wall_id": wallID,
		"title":   "Intruder",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/projects", owner.Token, gin.H{
		"wall_id": wallID,
		"title":   "Legit",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &project)

	w = env.do(t, http.MethodPut, "/api/v1/projects/"+project.ID, other.Token, gin.H{
		"title": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/projects/"+project.ID, other.Token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/projects/"+project.ID, owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProjectHandler_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	acct := env.register(t, "studio@pikxora.io", "Pixel Forge", "studio")
	wallID := createWall(t, env, acct.Token, "Showcase")

	w := env.do(t, http.MethodPost, "/api/v1/projects", acct.Token, gin.H{
		"wall_id":     wallID,
		"title":       "Creature Reel",
		"description": "Original description",
		"category":    "vfx",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &project)

	w = env.do(t, http.MethodPut, "/api/v1/projects/"+project.ID, acct.Token, gin.H{
		"title": "Creature Reel 2024",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	decodeJSON(t, w, &updated)
	require.Equal(t, "Creature Reel 2024", updated.Title)
	require.Equal(t, "Original description", updated.Description)
	require.Equal(t, "vfx", updated.Category)
}

func TestProjectHandler_BadWallID(t *testing.T) {
	env := newTestEnv(t)
	acct := env.register(t, "studio@pikxora.io", "Pixel Forge", "studio")

	w := env.do(t, http.MethodPost, "/api/v1/projects", acct.Token, gin.H{
		"wall_id": "not-a-uuid",
		"title":   "Orphan",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/projects", acct.Token, gin.H{
		"wall_id": "1a9e6cb2-58f7-4f8c-9c5d-b6d6a7f5a001",
		"title":   "Orphan",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
