package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

type localArtifactStore struct {
	logger outbound.LoggerPort
	dir    string
}

func NewLocalArtifactStore(dir string, logger outbound.LoggerPort) outbound.ArtifactStorePort {
	return &localArtifactStore{
		logger: logger,
		dir:    dir,
	}
}

func (l *localArtifactStore) Save(_ context.Context, name string, content []byte) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	tmp := path + ".part"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		l.logger.ErrorWithFields(err, "Failed to write artifact", map[string]interface{}{
			"path": tmp,
		})
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		l.logger.ErrorWithFields(err, "Failed to move artifact into place", map[string]interface{}{
			"path": path,
		})
		return err
	}
	return nil
}

func (l *localArtifactStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := l.path(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrArtifactNotFound
	}
	return file, err
}

func (l *localArtifactStore) Delete(_ context.Context, name string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrArtifactNotFound
	}
	return err
}

func (l *localArtifactStore) List(_ context.Context) ([]domain.ArtifactInfo, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}
	artifacts := make([]domain.ArtifactInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) == ".part" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, domain.ArtifactInfo{Name: entry.Name(), ModifiedAt: info.ModTime()})
	}
	return artifacts, nil
}

// path rejects names that would escape the store directory.
func (l *localArtifactStore) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("invalid artifact name %q: %w", name, domain.ErrArtifactNotFound)
	}
	return filepath.Join(l.dir, name), nil
}
