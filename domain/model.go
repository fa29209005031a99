package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type OutcomeStatus string

const (
	OutcomeDone  OutcomeStatus = "done"
	OutcomeError OutcomeStatus = "error"
)

// Outcome is the terminal result of one pipeline run for a call. A pending run
// has no Outcome at all.
type Outcome struct {
	Status     OutcomeStatus
	AudioURL   string
	ReplyText  string
	Transcript string
	ErrorKind  ErrorKind
}

func NewDoneOutcome(audioURL string, replyText string, transcript string) Outcome {
	return Outcome{
		Status:     OutcomeDone,
		AudioURL:   audioURL,
		ReplyText:  replyText,
		Transcript: transcript,
	}
}

func NewErrorOutcome(kind ErrorKind) Outcome {
	return Outcome{
		Status:    OutcomeError,
		ErrorKind: kind,
	}
}

func (o Outcome) IsDone() bool {
	return o.Status == OutcomeDone
}

type ArtifactInfo struct {
	Name       string
	ModifiedAt time.Time
}

// Prompt is a fixed utterance synthesized once at startup and played from the
// artifact store.
type Prompt struct {
	Name string
	Text string
}

type FeedbackEntry struct {
	ID         string
	CallID     string
	Transcript string
	Reply      string
	AudioName  string
	FirstReply bool
	RecordedAt time.Time
}

// AudioContentType maps an artifact name to the media type served for it.
func AudioContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	default:
		return "audio/mpeg"
	}
}
