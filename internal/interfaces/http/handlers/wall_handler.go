package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/interfaces/http/middleware"
	"pikxora.backend/internal/interfaces/http/response"
	"pikxora.backend/internal/usecases"
)

// WallHandler handles portfolio wall endpoints
type WallHandler struct {
	wallUsecase *usecases.WallUsecase
}

func NewWallHandler(wallUsecase *usecases.WallUsecase) *WallHandler {
	return &WallHandler{wallUsecase: wallUsecase}
}

// ListPublished returns every published wall, newest first
// GET /api/v1/walls
func (h *WallHandler) ListPublished(c *gin.Context) {
	walls, err := h.wallUsecase.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": walls})
}

// ListMine returns the caller's walls regardless of published state
// GET /api/v1/walls/my
func (h *WallHandler) ListMine(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	walls, err := h.wallUsecase.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": walls})
}

// Get returns a single wall with media resolved
// GET /api/v1/walls/:id
func (h *WallHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	wall, err := h.wallUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, wall)
}

// Create creates a wall owned by the caller
// POST /api/v1/walls
func (h *WallHandler) Create(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateWallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wall, err := h.wallUsecase.Create(c.Request.Context(), profileID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, wall)
}

// Update applies a partial update to a wall the caller owns
// PUT /api/v1/walls/:id
func (h *WallHandler) Update(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	var input entities.UpdateWallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wall, err := h.wallUsecase.Update(c.Request.Context(), profileID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, wall)
}

// Delete removes a wall the caller owns together with its projects and team
// DELETE /api/v1/walls/:id
func (h *WallHandler) Delete(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	if err := h.wallUsecase.Delete(c.Request.Context(), profileID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Wall deleted"})
}

// IncrementView bumps the wall's view counter
// PUT /api/v1/walls/:id/view
func (h *WallHandler) IncrementView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	views, err := h.wallUsecase.IncrementView(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"view_count": views})
}

// ListProjects returns a wall's projects in display order
// GET /api/v1/walls/:id/projects
func (h *WallHandler) ListProjects(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	projects, err := h.wallUsecase.ListProjects(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": projects})
}
