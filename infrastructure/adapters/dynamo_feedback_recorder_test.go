package adapters

import (
	"testing"
	"time"

	"github.com/riyadominic123/ai-call/domain"
)

func TestNewDynamoFeedbackItem(t *testing.T) {
	recordedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	item := newDynamoFeedbackItem(domain.FeedbackEntry{
		ID:         "turn-1",
		CallID:     "CA1",
		Transcript: "great service",
		Reply:      "Thank you!",
		AudioName:  "reply_CA1.mp3",
		FirstReply: true,
		RecordedAt: recordedAt,
	}, 60)

	if item.CallId != "CA1" || item.TurnId != "turn-1" || !item.FirstReply {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.RecordedAt != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected recorded_at %s", item.RecordedAt)
	}
	if item.TTL != recordedAt.Add(time.Hour).Unix() {
		t.Fatalf("unexpected ttl %d", item.TTL)
	}
}
