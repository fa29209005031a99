package config

import (
	"fmt"
	"os"
	"time"
)

const (
	ArtifactStoreLocal = "local"
	ArtifactStoreS3    = "s3"
)

type AudioConfig struct {
	UploadDir     string
	OutputDir     string
	ArtifactStore string
	Retention     time.Duration
	SweepInterval time.Duration
}

// GetAudioConfig also creates the upload and output directories.
func GetAudioConfig() (*AudioConfig, error) {
	uploadDir := getEnvOrDefault("AUDIO_UPLOAD_DIR", "audio_uploads")
	outputDir := getEnvOrDefault("AUDIO_OUTPUT_DIR", "audio_output")
	store := getEnvOrDefault("ARTIFACT_STORE", ArtifactStoreLocal)
	if store != ArtifactStoreLocal && store != ArtifactStoreS3 {
		return nil, fmt.Errorf("unknown ARTIFACT_STORE %q", store)
	}
	retention, err := getEnvInt("AUDIO_RETENTION_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	sweepInterval, err := getEnvInt("AUDIO_SWEEP_INTERVAL_MINUTES", 5)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return &AudioConfig{
		UploadDir:     uploadDir,
		OutputDir:     outputDir,
		ArtifactStore: store,
		Retention:     time.Duration(retention) * time.Minute,
		SweepInterval: time.Duration(sweepInterval) * time.Minute,
	}, nil
}
