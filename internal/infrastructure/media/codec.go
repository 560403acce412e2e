package media

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainerrors "pikxora.backend/internal/domain/errors"
)

// PublicPrefix is the URL path prefix under which stored uploads are served.
const PublicPrefix = "/uploads"

// DefaultMaxImageMB is the decoded size cap for inline image payloads.
const DefaultMaxImageMB = 50

// Kind classifies a media value.
type Kind int

const (
	KindUnknown Kind = iota
	KindInline
	KindStoredRef
	KindEmbed
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindStoredRef:
		return "storedRef"
	case KindEmbed:
		return "embedLink"
	default:
		return "unknown"
	}
}

// SizeResult reports the outcome of an inline payload size check.
type SizeResult struct {
	Valid  bool
	SizeMB float64
	Error  string
}

// extension -> MIME, for resolving stored files back to inline payloads.
var extToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
}

// MIME -> extension, for persisting inline payloads. Unknown types fall
// back to .png, matching what the upload form produces in practice.
var mimeToExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Codec converts media values among three representations: inline base64
// data URIs, stored file references under the managed upload root, and
// external embed links. Writes are normalized going in, reads are
// resolved back to inline payloads so clients can render directly.
type Codec struct {
	root string
}

// NewCodec creates a codec over the given upload root directory.
func NewCodec(root string) *Codec {
	return &Codec{root: root}
}

// Root returns the managed upload root.
func (c *Codec) Root() string {
	return c.root
}

// IsInline reports whether the value is a self-describing base64 data URI
// for image or video content.
func IsInline(value string) bool {
	if value == "" {
		return false
	}
	if !strings.HasPrefix(value, "data:image/") && !strings.HasPrefix(value, "data:video/") {
		return false
	}
	return strings.Contains(value, "base64,")
}

// IsStoredRef reports whether the value points into the managed upload area.
func IsStoredRef(value string) bool {
	return strings.HasPrefix(value, PublicPrefix+"/")
}

// IsEmbed reports whether the value is an external hosted-player URL.
func IsEmbed(value string) bool {
	if value == "" {
		return false
	}
	if strings.Contains(value, "youtube.com") ||
		strings.Contains(value, "youtu.be") ||
		strings.Contains(value, "vimeo.com") {
		return true
	}
	return strings.HasPrefix(value, "http") &&
		(strings.Contains(value, "/embed/") || strings.Contains(value, "player.vimeo.com"))
}

// Classify determines which representation a value is in. A value could
// superficially match more than one pattern, so detection runs in fixed
// priority order: inline > storedRef > embed > unknown.
func Classify(value string) Kind {
	switch {
	case IsInline(value):
		return KindInline
	case IsStoredRef(value):
		return KindStoredRef
	case IsEmbed(value):
		return KindEmbed
	default:
		return KindUnknown
	}
}

// ValidateSize checks an inline payload against a decoded-size cap in MB.
// Decoded size is estimated from the encoded length (x 3/4). The encoded
// length itself is also checked against 1.5x the cap to bound what travels
// over the wire. Both checks must pass.
func ValidateSize(payload string, maxSizeMB int) SizeResult {
	if payload == "" {
		return SizeResult{Valid: false, Error: "no media data provided"}
	}

	encoded := payload
	if idx := strings.Index(payload, ","); idx >= 0 {
		encoded = payload[idx+1:]
	}

	decodedBytes := float64(len(encoded)) * 3 / 4
	sizeMB := decodedBytes / (1024 * 1024)
	if decodedBytes > float64(maxSizeMB)*1024*1024 {
		return SizeResult{
			Valid:  false,
			SizeMB: sizeMB,
			Error:  fmt.Sprintf("media size (%.2fMB) exceeds maximum allowed size of %dMB", sizeMB, maxSizeMB),
		}
	}

	encodedMB := float64(len(encoded)) / (1024 * 1024)
	if encodedMB > float64(maxSizeMB)*1.5 {
		return SizeResult{
			Valid:  false,
			SizeMB: encodedMB,
			Error:  fmt.Sprintf("media payload (%.2fMB) is too large, maximum allowed: %.2fMB", encodedMB, float64(maxSizeMB)*1.5),
		}
	}

	return SizeResult{Valid: true, SizeMB: sizeMB}
}

// ToInline reads a stored file reference and returns it as a
// self-describing inline payload. Refs that resolve outside the upload
// root are rejected with ErrInvalidInput; ErrNotFound means the backing
// file is absent.
func (c *Codec) ToInline(storedRef string) (string, error) {
	rel := strings.TrimPrefix(storedRef, PublicPrefix)
	full := filepath.Join(c.root, filepath.FromSlash(rel))

	// A ref containing ".." segments can resolve outside the upload root.
	// Join cleans the path, so containment is a prefix check on the result.
	rootAbs := filepath.Clean(c.root)
	if full == rootAbs || !strings.HasPrefix(full, rootAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid media reference: %s: %w", storedRef, domainerrors.ErrInvalidInput)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s: %w", storedRef, domainerrors.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", storedRef, domainerrors.ErrIO)
	}

	mimeType := mimeForExt(strings.ToLower(filepath.Ext(storedRef)))
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// PersistInline decodes an inline payload and writes the bytes under the
// managed root, scoped by category. Filenames carry a timestamp and a
// random disambiguator so concurrent writes never collide. Every call
// creates a new file. Returns the public stored reference.
func (c *Codec) PersistInline(payload, category, prefix string) (string, error) {
	encoded := payload
	if idx := strings.Index(payload, ","); idx >= 0 {
		encoded = payload[idx+1:]
	}

	mimeType := "image/png"
	if start := strings.Index(payload, "data:"); start == 0 {
		if end := strings.Index(payload, ";base64"); end > 5 {
			mimeType = payload[5:end]
		}
	}
	ext, ok := mimeToExt[mimeType]
	if !ok {
		ext = ".png"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode media payload: %w", domainerrors.ErrInvalidInput)
	}

	dir := filepath.Join(c.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", dir, domainerrors.ErrIO)
	}

	name := fmt.Sprintf("%s-%d-%d%s", prefix, time.Now().UnixMilli(), rand.Int63n(1e9), ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, domainerrors.ErrIO)
	}

	return PublicPrefix + "/" + category + "/" + name, nil
}

func mimeForExt(ext string) string {
	if m, ok := extToMIME[ext]; ok {
		return m
	}
	if strings.HasPrefix(ext, ".") && len(ext) > 1 {
		return "application/" + ext[1:]
	}
	return "application/octet-stream"
}
