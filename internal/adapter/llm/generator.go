package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidquiz/internal/domain"
	"vidquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.GenerationClient on top of any langchaingo model.
type LangchainGenerator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
}

// NewLangchainGenerator wraps model. A zero timeout leaves the provider default in place.
func NewLangchainGenerator(model llms.Model, temperature float64, timeout time.Duration) (*LangchainGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	return &LangchainGenerator{
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

// Generate sends prompt in a single call and returns the completion text verbatim.
func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err), zap.Duration("timeout", g.timeout))
			return "", domain.NewGenerationFailedError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", domain.NewGenerationFailedError(fmt.Errorf("LLM call failed: %w", err))
	}

	l.Debug("LLM completion received",
		zap.Int("prompt_length", len(prompt)),
		zap.Int("completion_length", len(completion)),
		zap.Duration("duration", time.Since(start)))
	return completion, nil
}

// Static assertion to ensure LangchainGenerator implements GenerationClient
var _ domain.GenerationClient = (*LangchainGenerator)(nil)
