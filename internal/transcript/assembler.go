// Package transcript turns caption segments into the plain-text corpus fed to the prompt.
package transcript

import (
	"strings"

	"vidquiz/internal/domain"
)

// Assemble joins segment texts with a single space, in input order.
// Segment text is used as-is; an empty input yields "".
func Assemble(segments []domain.TranscriptSegment) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
