// Package quizgen holds the in-memory stages of quiz generation: prompt
// rendering, completion sanitization and question parsing.
package quizgen

import (
	"fmt"

	"vidquiz/internal/domain"
)

const promptTemplate = `Generate %d multiple-choice quiz questions based on the following transcript. ` +
	`Each question must have exactly %d options. ` +
	`Return the result as a valid JSON array of objects, where each object has the following structure: ` +
	`{ "question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "..." }. ` +
	`The value of "correctAnswer" must be identical to one of the options. ` +
	`Ensure the output is a valid JSON array without any surrounding code block markers or additional text. ` +
	"Here's the transcript:\n\n"

// BuildPrompt renders the instruction prompt with the transcript appended verbatim.
// The transcript is not escaped; directive-like text in captions reaches the model unchanged.
func BuildPrompt(transcriptText string) string {
	return fmt.Sprintf(promptTemplate, domain.QuestionsPerQuiz, domain.OptionsPerQuestion) + transcriptText
}
