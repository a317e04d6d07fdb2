package dto

// GenerateQuizRequest represents the body of a quiz generation request
// @Description Video reference to build a quiz from
type GenerateQuizRequest struct {
	URL string `json:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// QuizQuestionResponse represents one multiple-choice question
// @Description Quiz question with exactly four options
type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// GenerateQuizResponse is the success body. QuizQuestions is never null and may be empty.
type GenerateQuizResponse struct {
	QuizQuestions []QuizQuestionResponse `json:"quizQuestions"`
}

// HealthResponse represents the service health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
