package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"vidquiz/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ParseResult is either Parsed (Questions non-empty) or Empty.
// Err is set when the text was not a JSON array at all; it is a
// MALFORMED_MODEL_OUTPUT error meant for diagnostics, never for callers.
type ParseResult struct {
	Questions []domain.QuizQuestion
	Dropped   int
	Err       error
}

// Malformed reports whether the completion failed to parse as an array.
func (r ParseResult) Malformed() bool {
	return r.Err != nil
}

// Empty reports whether no usable question came out of the completion.
func (r ParseResult) Empty() bool {
	return len(r.Questions) == 0
}

func malformed(err error) ParseResult {
	return ParseResult{
		Questions: []domain.QuizQuestion{},
		Err:       domain.NewMalformedModelOutputError(err),
	}
}

// Parse decodes sanitized model output into questions. It never fails:
// syntax errors and a non-array top level yield an empty, malformed result,
// and elements that break a QuizQuestion invariant are dropped.
func Parse(sanitized string) ParseResult {
	if !json.Valid([]byte(sanitized)) {
		return malformed(fmt.Errorf("completion is not valid JSON"))
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(sanitized))
	if err != nil {
		return malformed(err)
	}
	items, ok := doc.([]any)
	if !ok {
		return malformed(fmt.Errorf("top-level value is %T, want array", doc))
	}

	schema, err := questionSchema()
	if err != nil {
		return malformed(err)
	}

	result := ParseResult{Questions: make([]domain.QuizQuestion, 0, len(items))}
	for _, item := range items {
		if err := schema.Validate(item); err != nil {
			result.Dropped++
			continue
		}
		q := toQuestion(item.(map[string]any))
		if err := q.Validate(); err != nil {
			result.Dropped++
			continue
		}
		result.Questions = append(result.Questions, q)
	}
	return result
}

// toQuestion converts an element that already passed the schema.
func toQuestion(obj map[string]any) domain.QuizQuestion {
	rawOptions := obj["options"].([]any)
	options := make([]string, 0, len(rawOptions))
	for _, opt := range rawOptions {
		options = append(options, opt.(string))
	}
	return domain.QuizQuestion{
		Question:      obj["question"].(string),
		Options:       options,
		CorrectAnswer: obj["correctAnswer"].(string),
	}
}
