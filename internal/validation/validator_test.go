package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_ValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		url       string
		wantCount int
		wantText  string
	}{
		{name: "valid url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantCount: 0},
		{name: "bare id accepted", url: "dQw4w9WgXcQ", wantCount: 0},
		{name: "not a url still accepted", url: "anything", wantCount: 0},
		{name: "empty", url: "", wantCount: 1, wantText: "url is required"},
		{name: "whitespace", url: "   ", wantCount: 1, wantText: "url is required"},
		{name: "too long", url: strings.Repeat("a", MaxLocatorLength+1), wantCount: 1, wantText: "outside"},
		{name: "max length", url: strings.Repeat("a", MaxLocatorLength), wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateGenerateQuizRequest(tt.url)
			assert.Len(t, errs, tt.wantCount)
			if tt.wantText != "" {
				assert.Contains(t, errs.Error(), tt.wantText)
			}
		})
	}
}
