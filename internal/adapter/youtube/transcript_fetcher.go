package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vidquiz/internal/domain"
	"vidquiz/internal/logger"

	yt "github.com/kkdai/youtube/v2"
	"go.uber.org/zap"
)

// videoClient is the subset of *yt.Client the fetcher uses.
type videoClient interface {
	GetVideoContext(ctx context.Context, url string) (*yt.Video, error)
	GetTranscriptCtx(ctx context.Context, video *yt.Video, lang string) (yt.VideoTranscript, error)
}

// TranscriptFetcher implements domain.TranscriptFetcher against YouTube captions.
type TranscriptFetcher struct {
	client   videoClient
	language string
}

// NewTranscriptFetcher creates a fetcher for captions in language.
// httpTimeout bounds each request made to YouTube.
func NewTranscriptFetcher(language string, httpTimeout time.Duration) (*TranscriptFetcher, error) {
	if language == "" {
		return nil, fmt.Errorf("transcript language cannot be empty")
	}
	client := &yt.Client{
		HTTPClient: &http.Client{Timeout: httpTimeout},
	}
	return newTranscriptFetcher(client, language), nil
}

func newTranscriptFetcher(client videoClient, language string) *TranscriptFetcher {
	return &TranscriptFetcher{client: client, language: language}
}

// FetchTranscript resolves locator (a URL or bare video id) and returns its
// caption segments in chronological order. It makes a single attempt.
func (f *TranscriptFetcher) FetchTranscript(ctx context.Context, locator string) ([]domain.TranscriptSegment, error) {
	l := logger.Get()

	locator = strings.TrimSpace(locator)
	if locator == "" {
		return nil, domain.NewTranscriptUnavailableError(locator, fmt.Errorf("empty locator"))
	}

	video, err := f.client.GetVideoContext(ctx, locator)
	if err != nil {
		l.Warn("Failed to resolve video", zap.String("locator", locator), zap.Error(err))
		return nil, domain.NewTranscriptUnavailableError(locator, fmt.Errorf("resolve video: %w", err))
	}

	captions, err := f.client.GetTranscriptCtx(ctx, video, f.language)
	if err != nil {
		l.Warn("Failed to fetch transcript",
			zap.String("locator", locator),
			zap.String("video_id", video.ID),
			zap.String("language", f.language),
			zap.Error(err))
		return nil, domain.NewTranscriptUnavailableError(locator, fmt.Errorf("fetch transcript: %w", err))
	}

	segments := make([]domain.TranscriptSegment, 0, len(captions))
	for _, c := range captions {
		segments = append(segments, domain.TranscriptSegment{
			Text:        c.Text,
			StartOffset: time.Duration(c.StartMs) * time.Millisecond,
			Duration:    time.Duration(c.Duration) * time.Millisecond,
		})
	}

	l.Debug("Transcript fetched",
		zap.String("video_id", video.ID),
		zap.Int("segments", len(segments)))
	return segments, nil
}

// Static assertion to ensure TranscriptFetcher implements domain.TranscriptFetcher
var _ domain.TranscriptFetcher = (*TranscriptFetcher)(nil)
