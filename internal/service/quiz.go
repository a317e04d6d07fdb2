package service

import (
	"context"
	"time"

	"vidquiz/internal/domain"
	"vidquiz/internal/logger"
	"vidquiz/internal/quizgen"
	"vidquiz/internal/transcript"
	"vidquiz/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the quiz generation entry point used by the transport layer
type QuizService interface {
	// GenerateQuiz runs the whole pipeline for locator. A nil error means
	// success, possibly with no questions; any hard failure is PIPELINE_FAILED.
	GenerateQuiz(ctx context.Context, locator string) (*domain.QuizResult, error)
}

// StateListener observes pipeline state transitions of a run.
type StateListener func(runID string, state domain.PipelineState)

// QuizServiceOption customizes quizService creation
type QuizServiceOption func(*quizService)

// WithStateListener registers a listener called on every state transition.
func WithStateListener(listener StateListener) QuizServiceOption {
	return func(s *quizService) {
		s.listener = listener
	}
}

// quizService implements QuizService
type quizService struct {
	fetcher     domain.TranscriptFetcher
	generator   domain.GenerationClient
	diagnostics domain.DiagnosticsSink
	listener    StateListener
	now         func() time.Time
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	fetcher domain.TranscriptFetcher,
	generator domain.GenerationClient,
	diagnostics domain.DiagnosticsSink,
	opts ...QuizServiceOption,
) QuizService {
	s := &quizService{
		fetcher:     fetcher,
		generator:   generator,
		diagnostics: diagnostics,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pipelineRun owns every intermediate value of one invocation.
type pipelineRun struct {
	id         string
	locator    string
	segments   []domain.TranscriptSegment
	transcript string
	prompt     string
	completion string
	sanitized  string
	parsed     quizgen.ParseResult
	log        *zap.Logger
}

type stage struct {
	state domain.PipelineState
	exec  func(ctx context.Context, run *pipelineRun) error
}

// stages lists the pipeline in execution order. Only fetch and generate can fail.
func (s *quizService) stages() []stage {
	return []stage{
		{domain.StateFetching, s.fetch},
		{domain.StateAssembling, assemble},
		{domain.StatePrompting, buildPrompt},
		{domain.StateGenerating, s.generate},
		{domain.StateSanitizing, sanitize},
		{domain.StateParsing, s.parse},
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, locator string) (*domain.QuizResult, error) {
	run := &pipelineRun{id: util.NewULID(), locator: locator}
	run.log = logger.Get().With(zap.String("run_id", run.id))
	run.log.Info("Quiz generation started", zap.String("locator", locator))

	start := s.now()
	s.transition(run, domain.StateIdle)

	for _, st := range s.stages() {
		s.transition(run, st.state)
		if err := st.exec(ctx, run); err != nil {
			s.transition(run, domain.StateFailed)
			run.log.Error("Quiz generation failed",
				zap.String("stage", string(st.state)),
				zap.Duration("elapsed", s.now().Sub(start)),
				zap.Error(err))
			return nil, domain.NewPipelineFailedError()
		}
	}

	s.transition(run, domain.StateDone)
	run.log.Info("Quiz generation finished",
		zap.Int("questions", len(run.parsed.Questions)),
		zap.Int("dropped", run.parsed.Dropped),
		zap.Bool("malformed", run.parsed.Malformed()),
		zap.Duration("elapsed", s.now().Sub(start)))

	return &domain.QuizResult{
		RunID:     run.id,
		State:     domain.StateDone,
		Questions: run.parsed.Questions,
		Dropped:   run.parsed.Dropped,
		Malformed: run.parsed.Malformed(),
	}, nil
}

func (s *quizService) transition(run *pipelineRun, state domain.PipelineState) {
	run.log.Debug("Pipeline state", zap.String("state", string(state)))
	if s.listener != nil {
		s.listener(run.id, state)
	}
}

func (s *quizService) fetch(ctx context.Context, run *pipelineRun) error {
	segments, err := s.fetcher.FetchTranscript(ctx, run.locator)
	if err != nil {
		return err
	}
	run.segments = segments
	return nil
}

func assemble(_ context.Context, run *pipelineRun) error {
	run.transcript = transcript.Assemble(run.segments)
	if run.transcript == "" {
		run.log.Warn("Transcript is empty, continuing", zap.Int("segments", len(run.segments)))
	}
	return nil
}

func buildPrompt(_ context.Context, run *pipelineRun) error {
	run.prompt = quizgen.BuildPrompt(run.transcript)
	return nil
}

func (s *quizService) generate(ctx context.Context, run *pipelineRun) error {
	completion, err := s.generator.Generate(ctx, run.prompt)
	if err != nil {
		return err
	}
	run.completion = completion
	return nil
}

func sanitize(_ context.Context, run *pipelineRun) error {
	run.sanitized = quizgen.Sanitize(run.completion)
	return nil
}

// parse never fails; malformed output is recorded and degrades to no questions.
func (s *quizService) parse(ctx context.Context, run *pipelineRun) error {
	run.parsed = quizgen.Parse(run.sanitized)

	if run.parsed.Dropped > 0 {
		run.log.Warn("Dropped nonconforming questions from model output",
			zap.Int("dropped", run.parsed.Dropped),
			zap.Int("kept", len(run.parsed.Questions)))
	}
	if !run.parsed.Malformed() {
		return nil
	}

	run.log.Warn("Error parsing model response",
		zap.Error(run.parsed.Err),
		zap.String("raw_response", run.completion))

	entry := domain.MalformedCompletion{
		RunID:      run.id,
		Locator:    run.locator,
		Completion: run.completion,
		Reason:     run.parsed.Err.Error(),
		RecordedAt: s.now().UTC(),
	}
	if s.diagnostics == nil {
		return nil
	}
	if err := s.diagnostics.RecordMalformedCompletion(ctx, entry); err != nil {
		run.log.Error("Failed to record malformed completion", zap.Error(err))
	}
	return nil
}
