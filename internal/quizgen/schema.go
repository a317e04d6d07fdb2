package quizgen

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://quiz-question.json"

// questionSchemaJSON describes one element of the array the model must return.
// Membership of correctAnswer in options is checked in Go, the schema cannot express it.
const questionSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["question", "options", "correctAnswer"],
  "properties": {
    "question": {"type": "string", "minLength": 1},
    "options": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"type": "string", "minLength": 1}
    },
    "correctAnswer": {"type": "string", "minLength": 1}
  }
}`

var (
	questionSchemaOnce     sync.Once
	questionSchemaCompiled *jsonschema.Schema
	questionSchemaErr      error
)

// questionSchema compiles the element schema once per process.
func questionSchema() (*jsonschema.Schema, error) {
	questionSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchemaJSON))
		if err != nil {
			questionSchemaErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionSchemaURL, doc); err != nil {
			questionSchemaErr = fmt.Errorf("add question schema resource: %w", err)
			return
		}
		questionSchemaCompiled, questionSchemaErr = c.Compile(questionSchemaURL)
	})
	return questionSchemaCompiled, questionSchemaErr
}
