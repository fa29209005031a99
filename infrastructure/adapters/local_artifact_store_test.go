package adapters

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/riyadominic123/ai-call/domain"
)

func TestLocalArtifactStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewLocalArtifactStore(t.TempDir(), NewZerologWrapper())

	if err := store.Save(ctx, "reply_CA1.mp3", []byte("audio")); err != nil {
		t.Fatal(err)
	}

	reader, err := store.Open(ctx, "reply_CA1.mp3")
	if err != nil {
		t.Fatal(err)
	}
	content, _ := io.ReadAll(reader)
	_ = reader.Close()
	if string(content) != "audio" {
		t.Fatalf("unexpected content %q", content)
	}

	artifacts, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 1 || artifacts[0].Name != "reply_CA1.mp3" {
		t.Fatalf("unexpected artifacts %+v", artifacts)
	}

	if err := store.Delete(ctx, "reply_CA1.mp3"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Open(ctx, "reply_CA1.mp3"); !errors.Is(err, domain.ErrArtifactNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestLocalArtifactStore_OverwriteReplacesContent(t *testing.T) {
	ctx := context.Background()
	store := NewLocalArtifactStore(t.TempDir(), NewZerologWrapper())

	_ = store.Save(ctx, "reply_CA1.mp3", []byte("first"))
	_ = store.Save(ctx, "reply_CA1.mp3", []byte("second"))

	reader, err := store.Open(ctx, "reply_CA1.mp3")
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	content, _ := io.ReadAll(reader)
	if string(content) != "second" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestLocalArtifactStore_RejectsTraversal(t *testing.T) {
	store := NewLocalArtifactStore(t.TempDir(), NewZerologWrapper())

	for _, name := range []string{"../secret.mp3", "nested/reply.mp3", "", ".."} {
		if _, err := store.Open(context.Background(), name); !errors.Is(err, domain.ErrArtifactNotFound) {
			t.Fatalf("expected %q to be rejected, got %v", name, err)
		}
	}
}
