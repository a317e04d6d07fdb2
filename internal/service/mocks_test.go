package service

import (
	"context"

	"vidquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTranscriptFetcher ---
type MockTranscriptFetcher struct {
	mock.Mock
}

func (m *MockTranscriptFetcher) FetchTranscript(ctx context.Context, locator string) ([]domain.TranscriptSegment, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranscriptSegment), args.Error(1)
}

// --- MockGenerationClient ---
type MockGenerationClient struct {
	mock.Mock
}

func (m *MockGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockDiagnosticsSink ---
type MockDiagnosticsSink struct {
	mock.Mock
}

func (m *MockDiagnosticsSink) RecordMalformedCompletion(ctx context.Context, entry domain.MalformedCompletion) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDiagnosticsSink) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
