package handler

import (
	"vidquiz/internal/domain"
	"vidquiz/internal/dto"
	"vidquiz/internal/logger"
	"vidquiz/internal/middleware"
	"vidquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuestions godoc
// @Summary Generate quiz questions from a video
// @Description Fetches the video's transcript and asks a language model for five multiple-choice questions. quizQuestions may be empty when the model output was unusable.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Video reference"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuizHandler) GenerateQuestions(c *fiber.Ctx) error {
	url, ok := c.Locals(middleware.ValidatedURLKey).(string)
	if !ok {
		return domain.NewInvalidInputError("url is required")
	}

	result, err := h.service.GenerateQuiz(c.UserContext(), url)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz questions generated",
		zap.String("run_id", result.RunID),
		zap.Int("count", len(result.Questions)),
	)

	return c.Status(fiber.StatusOK).JSON(toGenerateQuizResponse(result))
}

func toGenerateQuizResponse(result *domain.QuizResult) dto.GenerateQuizResponse {
	questions := make([]dto.QuizQuestionResponse, 0, len(result.Questions))
	for _, q := range result.Questions {
		questions = append(questions, dto.QuizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return dto.GenerateQuizResponse{QuizQuestions: questions}
}
