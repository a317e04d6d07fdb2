package domain

import "time"

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// QuestionsPerQuiz is the number of questions requested from the model.
const QuestionsPerQuiz = 5

// TranscriptSegment is one timed unit of caption text, in chronological order.
type TranscriptSegment struct {
	Text        string
	StartOffset time.Duration
	Duration    time.Duration
}

// QuizQuestion represents a single multiple-choice question built from a transcript.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Validate reports the first broken invariant of q, or nil.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question is required")
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewValidationError("exactly 4 options are required")
	}
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return NewValidationError("options must not be empty")
		}
		if opt == q.CorrectAnswer {
			answerFound = true
		}
	}
	if !answerFound {
		return NewValidationError("correctAnswer must be one of the options")
	}
	return nil
}

// PipelineState names the stage a pipeline run is in.
type PipelineState string

const (
	StateIdle       PipelineState = "idle"
	StateFetching   PipelineState = "fetching"
	StateAssembling PipelineState = "assembling"
	StatePrompting  PipelineState = "prompting"
	StateGenerating PipelineState = "generating"
	StateSanitizing PipelineState = "sanitizing"
	StateParsing    PipelineState = "parsing"
	StateDone       PipelineState = "done"
	StateFailed     PipelineState = "failed"
)

// QuizResult is the successful outcome of one pipeline run.
// Questions is never nil; it is empty when the model output could not be used.
type QuizResult struct {
	RunID     string
	State     PipelineState
	Questions []QuizQuestion
	// Dropped counts parsed elements that failed shape validation.
	Dropped int
	// Malformed is set when the completion was not a JSON array at all.
	Malformed bool
}
