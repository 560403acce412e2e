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

// TeamHandler handles studio wall team rosters
type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// ListByWall returns the roster of a studio wall
// GET /api/v1/walls/:id/team
func (h *TeamHandler) ListByWall(c *gin.Context) {
	wallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid wall ID"))
		return
	}

	members, err := h.teamUsecase.ListByWall(c.Request.Context(), wallID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": members})
}

// Add links an artist profile to a wall the caller owns
// POST /api/v1/team
func (h *TeamHandler) Add(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.AddTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, err := h.teamUsecase.Add(c.Request.Context(), profileID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// Remove takes an artist off a wall the caller owns
// DELETE /api/v1/team/:id
func (h *TeamHandler) Remove(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team member ID"))
		return
	}

	if err := h.teamUsecase.Remove(c.Request.Context(), profileID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team member removed"})
}
