package inbound

import (
	"context"
	"io"
)

type ProcessAudioParams struct {
	FileName string
	Content  io.Reader
}

type ProcessAudioResult struct {
	Transcript string
	Reply      string
	AudioName  string
	AudioURL   string
}

type AudioPipelinePort interface {
	Process(ctx context.Context, params ProcessAudioParams) (*ProcessAudioResult, error)
}
