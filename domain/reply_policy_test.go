package domain

import (
	"strings"
	"testing"
)

func TestTruncateReply(t *testing.T) {
	long := strings.Repeat("a", 250)

	if got := TruncateReply(long, 200); len([]rune(got)) != 200 {
		t.Fatalf("expected 200 characters, got %d", len([]rune(got)))
	}
	if got := TruncateReply("short", 100); got != "short" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	if got := TruncateReply("héllo wörld", 5); got != "héllo" {
		t.Fatalf("expected rune aware truncation, got %q", got)
	}
	if got := TruncateReply("anything", 0); got != "" {
		t.Fatalf("expected empty text for zero limit, got %q", got)
	}
}

func TestReplyLimit(t *testing.T) {
	if ReplyLimit(true, 200, 100) != 200 {
		t.Fatal("first reply should use the first limit")
	}
	if ReplyLimit(false, 200, 100) != 100 {
		t.Fatal("follow-up reply should use the follow-up limit")
	}
}

func TestKindOf(t *testing.T) {
	err := NewStageError(FetchFailed, ErrArtifactNotFound)
	if KindOf(err) != FetchFailed {
		t.Fatalf("expected %s, got %s", FetchFailed, KindOf(err))
	}
	if KindOf(ErrEmptyTranscript) != InternalError {
		t.Fatal("untagged errors should map to internal_error")
	}
}
