package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
)

func TestAudioGenerator_Generate(t *testing.T) {
	var received ElevenLabsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tts/voice-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewAudioGenerator(NewContentFetcher(logger), &config.ElevenLabsConfig{
		ApiUrl:          server.URL + "/tts/",
		ApiKey:          "secret",
		ModelId:         "eleven_turbo_v2",
		VoiceID:         "voice-1",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}, logger)

	audio, err := generator.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello world"})
	if err != nil {
		t.Fatal("Failed to generate audio:", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio %q", audio)
	}
	if received.Text != "Hello world" || received.ModelId != "eleven_turbo_v2" {
		t.Fatalf("unexpected request body %+v", received)
	}
	if received.VoiceSettings.SimilarityBoost != 0.75 {
		t.Fatalf("unexpected voice settings %+v", received.VoiceSettings)
	}
}

func TestAudioGenerator_GenerateFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewAudioGenerator(NewContentFetcher(logger), &config.ElevenLabsConfig{
		ApiUrl:  server.URL,
		VoiceID: "voice-1",
	}, logger)

	if _, err := generator.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello"}); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}
