package usecases

import (
	"context"

	"go.uber.org/zap"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/pkg/logger"
)

// mediaNormalizer applies the dual normalization policy shared by wall
// and project writes: inbound values are canonicalized to inline form
// (embed links pass through), outbound stored refs are resolved back to
// inline so clients can render without a second fetch.
type mediaNormalizer struct {
	codec *media.Codec
	maxMB int
}

func newMediaNormalizer(codec *media.Codec, maxMB int) mediaNormalizer {
	if maxMB <= 0 {
		maxMB = media.DefaultMaxImageMB
	}
	return mediaNormalizer{codec: codec, maxMB: maxMB}
}

// normalizeWrite converts a submitted media value to its canonical
// stored form. Inline payloads are size-checked and kept as submitted,
// stored refs are resolved to inline before persisting, embed links and
// anything unrecognized pass through unchanged.
func (n mediaNormalizer) normalizeWrite(value string) (string, error) {
	switch media.Classify(value) {
	case media.KindInline:
		if res := media.ValidateSize(value, n.maxMB); !res.Valid {
			return "", domainerrors.Validation(res.Error)
		}
		return value, nil
	case media.KindStoredRef:
		return n.codec.ToInline(value)
	default:
		return value, nil
	}
}

// resolveRead turns a stored ref back into an inline payload for
// display. Resolution is best effort: on failure the stored value is
// kept and the miss is logged rather than failing the request.
func (n mediaNormalizer) resolveRead(ctx context.Context, value string) string {
	if !media.IsStoredRef(value) {
		return value
	}
	inline, err := n.codec.ToInline(value)
	if err != nil {
		logger.Warn(ctx, "media resolve failed, keeping stored value",
			zap.String("ref", value),
			zap.Error(err))
		return value
	}
	return inline
}
