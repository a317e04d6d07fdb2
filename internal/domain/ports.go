package domain

import (
	"context"
	"time"
)

// TranscriptFetcher retrieves the ordered caption segments of a video.
type TranscriptFetcher interface {
	// FetchTranscript makes a single attempt; any failure is a TranscriptUnavailable error.
	FetchTranscript(ctx context.Context, locator string) ([]TranscriptSegment, error)
}

// GenerationClient sends a prompt to a generative model and returns the completion verbatim.
type GenerationClient interface {
	// Generate makes exactly one call; any failure is a GenerationFailed error.
	Generate(ctx context.Context, prompt string) (string, error)
}

// MalformedCompletion is the diagnostic record kept for model output that could not be parsed.
type MalformedCompletion struct {
	RunID      string    `json:"run_id"`
	Locator    string    `json:"locator"`
	Completion string    `json:"completion"`
	Reason     string    `json:"reason"`
	RecordedAt time.Time `json:"recorded_at"`
}

// DiagnosticsSink stores malformed completions for later inspection.
// Implementations must not block the pipeline on failure; errors are only logged.
type DiagnosticsSink interface {
	RecordMalformedCompletion(ctx context.Context, entry MalformedCompletion) error

	// Ping checks the health of the backing store.
	Ping(ctx context.Context) error
}
