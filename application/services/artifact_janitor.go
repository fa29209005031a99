package services

import (
	"context"
	"strings"
	"time"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

const replyArtifactPrefix = "reply_"

// ArtifactJanitor removes synthesized replies once they are older than the
// retention window. Prompt artifacts are left alone.
type ArtifactJanitor struct {
	logger    outbound.LoggerPort
	store     outbound.ArtifactStorePort
	retention time.Duration
}

func NewArtifactJanitor(logger outbound.LoggerPort, store outbound.ArtifactStorePort, retention time.Duration) *ArtifactJanitor {
	return &ArtifactJanitor{
		logger:    logger,
		store:     store,
		retention: retention,
	}
}

func (j *ArtifactJanitor) Sweep(ctx context.Context, now time.Time) (int, error) {
	artifacts, err := j.store.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, artifact := range artifacts {
		if !strings.HasPrefix(artifact.Name, replyArtifactPrefix) {
			continue
		}
		if now.Sub(artifact.ModifiedAt) < j.retention {
			continue
		}
		if err := j.store.Delete(ctx, artifact.Name); err != nil {
			j.logger.ErrorWithFields(err, "Failed to delete expired artifact", map[string]interface{}{
				"name": artifact.Name,
			})
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.InfoWithFields("Expired artifacts removed", map[string]interface{}{
			"removed": removed,
		})
	}
	return removed, nil
}

// Run sweeps every interval until ctx is done.
func (j *ArtifactJanitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := j.Sweep(ctx, now); err != nil {
				j.logger.Error(err, "Artifact sweep failed")
			}
		}
	}
}
