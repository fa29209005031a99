package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
)

func TestAudioPipeline_Process(t *testing.T) {
	f := newRunnerFixture(t)
	f.generator.reply = strings.Repeat("x", 300)
	pipeline := NewAudioPipeline(adapters.NewZerologWrapper(), f.stages, f.uploadDir)

	result, err := pipeline.Process(context.Background(), inbound.ProcessAudioParams{
		FileName: "feedback.WAV",
		Content:  strings.NewReader("RIFF"),
	})
	if err != nil {
		t.Fatal("Failed to process audio:", err)
	}

	if result.Transcript != "The hotel was lovely" {
		t.Fatalf("unexpected transcript %q", result.Transcript)
	}
	if !strings.HasPrefix(result.AudioName, "reply_") || !strings.HasSuffix(result.AudioName, ".mp3") {
		t.Fatalf("unexpected audio name %q", result.AudioName)
	}
	if result.AudioURL != "https://example.ngrok.app/audio/"+result.AudioName {
		t.Fatalf("unexpected audio url %q", result.AudioURL)
	}
	if len(f.tts.lastText()) != 300 {
		t.Fatal("upload replies must be spoken in full")
	}
	assertNoRecordings(t, f.uploadDir)
}

func TestAudioPipeline_RejectsUnsupportedFormat(t *testing.T) {
	f := newRunnerFixture(t)
	pipeline := NewAudioPipeline(adapters.NewZerologWrapper(), f.stages, f.uploadDir)

	_, err := pipeline.Process(context.Background(), inbound.ProcessAudioParams{
		FileName: "notes.txt",
		Content:  strings.NewReader("hello"),
	})
	if !errors.Is(err, domain.ErrUnsupportedAudioFormat) {
		t.Fatalf("expected ErrUnsupportedAudioFormat, got %v", err)
	}
	if f.transcriber.callCount() != 0 {
		t.Fatal("no stage may run for an unsupported upload")
	}
}

func TestAudioPipeline_ReportsStageKind(t *testing.T) {
	f := newRunnerFixture(t)
	f.generator.err = errUpstream
	pipeline := NewAudioPipeline(adapters.NewZerologWrapper(), f.stages, f.uploadDir)

	_, err := pipeline.Process(context.Background(), inbound.ProcessAudioParams{
		FileName: "feedback.ogg",
		Content:  strings.NewReader("OggS"),
	})
	if domain.KindOf(err) != domain.GenerationFailed {
		t.Fatalf("expected generation_failed, got %v", err)
	}
	assertNoRecordings(t, f.uploadDir)
}
