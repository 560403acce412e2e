package usecases

import (
	"context"
	"regexp"

	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/media"
)

var safeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// MediaUsecase persists directly uploaded inline payloads into the
// managed upload area and hands back a stored ref.
type MediaUsecase struct {
	codec *media.Codec
	maxMB int
}

// NewMediaUsecase creates a new media usecase
func NewMediaUsecase(codec *media.Codec, maxImageMB int) *MediaUsecase {
	if maxImageMB <= 0 {
		maxImageMB = media.DefaultMaxImageMB
	}
	return &MediaUsecase{codec: codec, maxMB: maxImageMB}
}

// Upload size-checks an inline payload and writes it under the managed
// root, returning the public stored ref.
func (u *MediaUsecase) Upload(ctx context.Context, input *entities.UploadMediaInput) (string, error) {
	if !media.IsInline(input.Data) {
		return "", domainerrors.Validation("data must be an inline media payload")
	}
	if res := media.ValidateSize(input.Data, u.maxMB); !res.Valid {
		return "", domainerrors.Validation(res.Error)
	}

	category := input.Category
	if category == "" {
		category = "general"
	}
	prefix := input.Prefix
	if prefix == "" {
		prefix = "upload"
	}
	// category and prefix become path segments, keep them boring
	if !safeNamePattern.MatchString(category) || !safeNamePattern.MatchString(prefix) {
		return "", domainerrors.Validation("category and prefix must be lowercase alphanumeric")
	}

	return u.codec.PersistInline(input.Data, category, prefix)
}
