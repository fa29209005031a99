package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riyadominic123/ai-call/config"
)

func TestTwilioRecordingFetcher_UsesAccountCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC123" || pass != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	fetcher := NewTwilioRecordingFetcher(NewContentFetcher(logger), &config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
	}, logger)

	content, err := fetcher.Fetch(context.Background(), server.URL+"/Recordings/RE1")
	if err != nil {
		t.Fatal("Failed to fetch recording:", err)
	}
	if string(content) != "RIFF" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestTwilioRecordingFetcher_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	logger := NewZerologWrapper()
	fetcher := NewTwilioRecordingFetcher(NewContentFetcher(logger), &config.TwilioConfig{}, logger)

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/missing"); err == nil {
		t.Fatal("expected an error for a missing recording")
	}
}
