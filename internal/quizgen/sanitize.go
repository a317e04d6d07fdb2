package quizgen

import (
	"regexp"
	"strings"
)

var (
	// An opening fence with an optional language tag, e.g. "```json".
	leadingFence = regexp.MustCompile("^```[A-Za-z0-9_+-]*[ \t]*\r?\n?")
	// A closing fence, optionally preceded by a line break.
	trailingFence = regexp.MustCompile("\r?\n?```$")
	// Reasoning models served through ollama prefix their answer with this block.
	leadingThink = regexp.MustCompile(`(?s)^<think>.*?</think>`)
)

// Sanitize strips the wrappers models put around structured output: code
// fences and a leading <think> block. The interior is never rewritten.
// Stripping repeats until nothing changes, so Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := leadingThink.ReplaceAllString(s, "")
		next = leadingFence.ReplaceAllString(next, "")
		next = trailingFence.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}
