package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/pkg/logger"
)

// mediaRefSource lists the stored upload paths a table still references.
type mediaRefSource interface {
	ListMediaRefs(ctx context.Context) ([]string, error)
}

// UploadSweeperJob removes files from the upload root that no wall or
// project references anymore. Uploads younger than the grace window are
// kept, so a file uploaded just before the wall create that references
// it is never swept mid-flight.
type UploadSweeperJob struct {
	root     string
	sources  []mediaRefSource
	interval time.Duration
	grace    time.Duration
	stop     chan struct{}
}

func NewUploadSweeperJob(root string, interval, grace time.Duration, sources ...mediaRefSource) *UploadSweeperJob {
	return &UploadSweeperJob{
		root:     root,
		sources:  sources,
		interval: interval,
		grace:    grace,
		stop:     make(chan struct{}),
	}
}

func (j *UploadSweeperJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting upload sweeper", zap.String("root", j.root), zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "upload sweeper stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "upload sweeper stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *UploadSweeperJob) Stop() {
	close(j.stop)
}

// sweep walks the upload root once and deletes orphaned files.
func (j *UploadSweeperJob) sweep(ctx context.Context) {
	live, err := j.liveRefs(ctx)
	if err != nil {
		logger.Error(ctx, "upload sweeper: listing referenced media failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-j.grace)
	removed := 0

	err = filepath.Walk(j.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}

		rel, err := filepath.Rel(j.root, path)
		if err != nil {
			return nil
		}
		ref := media.PublicPrefix + "/" + filepath.ToSlash(rel)
		if live[ref] {
			return nil
		}

		if err := os.Remove(path); err != nil {
			logger.Warn(ctx, "upload sweeper: remove failed", zap.String("path", path), zap.Error(err))
			return nil
		}
		removed++
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		logger.Error(ctx, "upload sweeper: walk failed", zap.Error(err))
		return
	}

	if removed > 0 {
		logger.Info(ctx, "upload sweeper: removed orphaned uploads", zap.Int("count", removed))
	}
}

func (j *UploadSweeperJob) liveRefs(ctx context.Context) (map[string]bool, error) {
	live := make(map[string]bool)
	for _, src := range j.sources {
		refs, err := src.ListMediaRefs(ctx)
		if err != nil {
			return nil, err
		}
		for _, ref := range refs {
			live[ref] = true
		}
	}
	return live, nil
}
