package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	"vidquiz/internal/domain"

	yt "github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoClient struct {
	video         *yt.Video
	videoErr      error
	transcript    yt.VideoTranscript
	transcriptErr error

	gotURL  string
	gotLang string
}

func (f *fakeVideoClient) GetVideoContext(ctx context.Context, url string) (*yt.Video, error) {
	f.gotURL = url
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.video, nil
}

func (f *fakeVideoClient) GetTranscriptCtx(ctx context.Context, video *yt.Video, lang string) (yt.VideoTranscript, error) {
	f.gotLang = lang
	if f.transcriptErr != nil {
		return nil, f.transcriptErr
	}
	return f.transcript, nil
}

func TestNewTranscriptFetcher(t *testing.T) {
	_, err := NewTranscriptFetcher("", time.Second)
	require.Error(t, err)

	f, err := NewTranscriptFetcher("en", time.Second)
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestTranscriptFetcher_FetchTranscript_Success(t *testing.T) {
	client := &fakeVideoClient{
		video: &yt.Video{ID: "dQw4w9WgXcQ"},
		transcript: yt.VideoTranscript{
			{Text: "Intro ", StartMs: 0, Duration: 1500},
			{Text: "middle part ", StartMs: 1500, Duration: 2000},
			{Text: "end.", StartMs: 3500, Duration: 500},
		},
	}
	f := newTranscriptFetcher(client, "en")

	segments, err := f.FetchTranscript(context.Background(), " https://www.youtube.com/watch?v=dQw4w9WgXcQ ")

	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", client.gotURL)
	assert.Equal(t, "en", client.gotLang)
	assert.Equal(t, []domain.TranscriptSegment{
		{Text: "Intro ", StartOffset: 0, Duration: 1500 * time.Millisecond},
		{Text: "middle part ", StartOffset: 1500 * time.Millisecond, Duration: 2 * time.Second},
		{Text: "end.", StartOffset: 3500 * time.Millisecond, Duration: 500 * time.Millisecond},
	}, segments)
}

func TestTranscriptFetcher_FetchTranscript_Failures(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		client  *fakeVideoClient
	}{
		{
			name:    "empty locator",
			locator: "   ",
			client:  &fakeVideoClient{},
		},
		{
			name:    "invalid locator",
			locator: "not a video",
			client:  &fakeVideoClient{videoErr: yt.ErrInvalidCharactersInVideoID},
		},
		{
			name:    "captions disabled",
			locator: "https://youtu.be/abc",
			client:  &fakeVideoClient{video: &yt.Video{ID: "abc"}, transcriptErr: yt.ErrTranscriptDisabled},
		},
		{
			name:    "network failure",
			locator: "https://youtu.be/abc",
			client:  &fakeVideoClient{videoErr: errors.New("dial tcp: i/o timeout")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTranscriptFetcher(tt.client, "en")
			segments, err := f.FetchTranscript(context.Background(), tt.locator)
			require.Error(t, err)
			assert.Nil(t, segments)
			assert.ErrorIs(t, err, domain.ErrTranscriptUnavailable)
		})
	}
}

func TestTranscriptFetcher_FetchTranscript_NoSegments(t *testing.T) {
	client := &fakeVideoClient{video: &yt.Video{ID: "abc"}, transcript: yt.VideoTranscript{}}
	f := newTranscriptFetcher(client, "en")

	segments, err := f.FetchTranscript(context.Background(), "abc")

	require.NoError(t, err)
	assert.Empty(t, segments)
}
