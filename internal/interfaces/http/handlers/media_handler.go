package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/interfaces/http/response"
	"pikxora.backend/internal/usecases"
)

// MediaHandler handles direct media uploads
type MediaHandler struct {
	mediaUsecase *usecases.MediaUsecase
}

func NewMediaHandler(mediaUsecase *usecases.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

// Upload stores an inline payload on disk and returns its public URL
// POST /api/v1/media
func (h *MediaHandler) Upload(c *gin.Context) {
	var input entities.UploadMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	url, err := h.mediaUsecase.Upload(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
