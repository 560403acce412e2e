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

// ConnectionHandler handles networking requests between profiles
type ConnectionHandler struct {
	connectionUsecase *usecases.ConnectionUsecase
}

func NewConnectionHandler(connectionUsecase *usecases.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{connectionUsecase: connectionUsecase}
}

// Create sends a connection request from the caller's profile
// POST /api/v1/connections
func (h *ConnectionHandler) Create(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateConnectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	conn, err := h.connectionUsecase.Create(c.Request.Context(), profileID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conn)
}

// List returns the caller's sent and received connections
// GET /api/v1/connections
func (h *ConnectionHandler) List(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	conns, err := h.connectionUsecase.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": conns})
}

// UpdateStatus lets the receiver accept or decline a pending request
// PUT /api/v1/connections/:id/status
func (h *ConnectionHandler) UpdateStatus(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid connection ID"))
		return
	}

	var input entities.UpdateConnectionStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	conn, err := h.connectionUsecase.UpdateStatus(c.Request.Context(), profileID, id, entities.ConnectionStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, conn)
}
