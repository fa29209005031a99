package sessions

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
)

func TestResultStore_TakeOnce(t *testing.T) {
	store := NewResultStore(adapters.NewZerologWrapper(), 4)

	if err := store.Put("CA1", domain.NewDoneOutcome("https://host/audio/reply_CA1.mp3", "thanks", "hello")); err != nil {
		t.Fatal("Failed to put outcome:", err)
	}

	outcome, ok := store.Take("CA1")
	if !ok {
		t.Fatal("expected a stored outcome")
	}
	if !outcome.IsDone() || outcome.ReplyText != "thanks" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}

	if _, ok := store.Take("CA1"); ok {
		t.Fatal("second take should report pending")
	}
}

func TestResultStore_RejectsOverwrite(t *testing.T) {
	store := NewResultStore(adapters.NewZerologWrapper(), 4)

	if err := store.Put("CA1", domain.NewErrorOutcome(domain.FetchFailed)); err != nil {
		t.Fatal("Failed to put outcome:", err)
	}
	err := store.Put("CA1", domain.NewDoneOutcome("url", "reply", "text"))
	if !errors.Is(err, domain.ErrOutcomeExists) {
		t.Fatalf("expected ErrOutcomeExists, got %v", err)
	}

	outcome, _ := store.Take("CA1")
	if outcome.ErrorKind != domain.FetchFailed {
		t.Fatalf("first outcome should survive, got %+v", outcome)
	}
}

func TestResultStore_TakeMissingHasNoSideEffects(t *testing.T) {
	store := NewResultStore(adapters.NewZerologWrapper(), 4).(*resultStore)

	if _, ok := store.Take("CA404"); ok {
		t.Fatal("expected pending for an unknown call")
	}
	if store.entries.len() != 0 {
		t.Fatal("take on a missing call must not create entries")
	}
}

func TestResultStore_ConcurrentCalls(t *testing.T) {
	store := NewResultStore(adapters.NewZerologWrapper(), 8)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		callID := fmt.Sprintf("CA%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Put(callID, domain.NewErrorOutcome(domain.SynthesisFailed)); err != nil {
				t.Error("Failed to put outcome:", err)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		if _, ok := store.Take(fmt.Sprintf("CA%d", i)); !ok {
			t.Fatalf("missing outcome for CA%d", i)
		}
	}
}

func TestReplyLedger_MarkReplied(t *testing.T) {
	ledger := NewReplyLedger(4)

	if !ledger.MarkReplied("CA1") {
		t.Fatal("first reply should be reported as first")
	}
	if ledger.MarkReplied("CA1") {
		t.Fatal("second reply should not be reported as first")
	}
	if !ledger.MarkReplied("CA2") {
		t.Fatal("calls must not share reply state")
	}

	ledger.Forget("CA1")
	if !ledger.MarkReplied("CA1") {
		t.Fatal("forgotten call should start over")
	}
}

func TestPollCounter(t *testing.T) {
	counter := NewPollCounter(4)

	for want := 1; want <= 3; want++ {
		if got := counter.Increment("CA1"); got != want {
			t.Fatalf("expected %d polls, got %d", want, got)
		}
	}
	counter.Reset("CA1")
	if got := counter.Increment("CA1"); got != 1 {
		t.Fatalf("expected counter to restart, got %d", got)
	}
}
