package services

import (
	"context"
	"os"
	"testing"

	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
)

func TestPromptPrewarmer_SynthesizesEveryPrompt(t *testing.T) {
	f := newRunnerFixture(t)
	prewarmer := NewPromptPrewarmer(adapters.NewZerologWrapper(), f.pool, f.stages)

	urls, err := prewarmer.Prewarm(context.Background(), []domain.Prompt{
		{Name: "intro.mp3", Text: "Hi there!"},
		{Name: "apology.mp3", Text: "Sorry."},
	})
	if err != nil {
		t.Fatal("Failed to prewarm prompts:", err)
	}

	for _, name := range []string{"intro.mp3", "apology.mp3"} {
		if _, err := os.Stat(f.outputDir + "/" + name); err != nil {
			t.Fatalf("prompt %s not stored: %v", name, err)
		}
		if urls[name] != "https://example.ngrok.app/audio/"+name {
			t.Fatalf("unexpected url for %s: %q", name, urls[name])
		}
	}
}

func TestPromptPrewarmer_ReportsFailures(t *testing.T) {
	f := newRunnerFixture(t)
	f.tts.err = errUpstream
	prewarmer := NewPromptPrewarmer(adapters.NewZerologWrapper(), f.pool, f.stages)

	urls, err := prewarmer.Prewarm(context.Background(), []domain.Prompt{{Name: "intro.mp3", Text: "Hi there!"}})
	if domain.KindOf(err) != domain.SynthesisFailed {
		t.Fatalf("expected synthesis_failed, got %v", err)
	}
	if len(urls) != 0 {
		t.Fatalf("failed prompts must not be reported as ready: %v", urls)
	}
}

func TestPromptPrewarmer_KeepsSuccessfulPrompts(t *testing.T) {
	f := newRunnerFixture(t)
	prewarmer := NewPromptPrewarmer(adapters.NewZerologWrapper(), f.pool, f.stages)

	urls, err := prewarmer.Prewarm(context.Background(), []domain.Prompt{
		{Name: "intro.mp3", Text: "Hi there!"},
		{Name: "../apology.mp3", Text: "Sorry."},
	})
	if err == nil {
		t.Fatal("expected the invalid prompt name to fail")
	}
	if urls["intro.mp3"] == "" {
		t.Fatalf("the intro must survive a failing sibling: %v", urls)
	}
	if _, ok := urls["../apology.mp3"]; ok {
		t.Fatal("failed prompt reported as ready")
	}
}
