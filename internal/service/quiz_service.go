package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/llm"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/quizgen"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// generationMaxTokens caps a single quiz generation response.
const generationMaxTokens = 4096

// QuizService assembles quiz payloads. It tries the AI generation path
// first and falls back to the static question bank on any failure; once a
// request has passed validation the service never returns an error.
type QuizService struct {
	provider llm.Provider // nil when no API key is configured
	rdb      *redis.Client
	timeout  time.Duration
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService. provider may be nil, in which
// case every request is served from the fallback bank. rdb may be nil to
// disable the session payload cache.
func NewQuizService(provider llm.Provider, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *QuizService {
	return &QuizService{
		provider: provider,
		rdb:      rdb,
		timeout:  cfg.GenerationTimeout,
		cacheTTL: cfg.QuizCacheTTL,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// Generate builds the quiz payload for a validated request.
//
// Failure policy: upstream generation errors (missing key, network, bad
// status, unparseable output) are logged and absorbed by falling back to the
// bank. A recovery boundary around the whole method additionally serves an
// emergency generic quiz if anything else goes wrong, so the caller always
// receives a well-formed payload.
func (s *QuizService) Generate(ctx context.Context, userID int, req model.GenerateQuizRequest) (data *model.QuizData) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("Quiz assembly panicked, serving emergency quiz")
			data = s.emergencyQuiz()
		}
	}()

	// Session-level cache: identical settings within the TTL reuse the
	// payload instead of re-invoking the generation service.
	cacheKey := config.CacheKey.QuizPayloadKey(userID, req.ExamName, string(req.QuizType), req.SelectedTopics, req.QuestionCount)
	if cached := s.cachedQuiz(ctx, cacheKey); cached != nil {
		return cached
	}

	questions, source := s.buildQuestions(ctx, req)

	data = &model.QuizData{
		Questions: questions,
		ExamInfo: model.ExamInfo{
			Name:           req.ExamName,
			Type:           quizTypeLabel(req.QuizType),
			TotalQuestions: len(questions),
		},
		Source: source,
	}

	s.cacheQuiz(ctx, cacheKey, data)
	return data
}

// buildQuestions runs the AI path and falls back to the bank on any error.
// The triggering error is logged, never surfaced.
func (s *QuizService) buildQuestions(ctx context.Context, req model.GenerateQuizRequest) ([]model.QuizQuestion, model.QuizSource) {
	questions, err := s.aiQuestions(ctx, req)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("exam", req.ExamName).
			Int("question_count", req.QuestionCount).
			Msg("AI generation failed, using fallback bank")
		return quizgen.FromBank(req.ExamName, req.SelectedTopics, req.QuestionCount), model.QuizSourceFallback
	}
	return questions, model.QuizSourceGenerated
}

// aiQuestions performs one bounded generation call and normalizes its output.
func (s *QuizService) aiQuestions(ctx context.Context, req model.GenerateQuizRequest) ([]model.QuizQuestion, error) {
	if s.provider == nil {
		return nil, llm.ErrMissingAPIKey
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(genCtx, llm.Request{
		System:      quizgen.SystemPrompt,
		Prompt:      quizgen.BuildPrompt(req),
		MaxTokens:   generationMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	return quizgen.ExtractQuestions(resp.Content, req.SelectedTopics)
}

// emergencyQuiz is the last-resort payload: a generic 10-question quiz from
// the default bank.
func (s *QuizService) emergencyQuiz() *model.QuizData {
	questions := quizgen.FromBank(quizgen.EmergencyExamName, []string{quizgen.EmergencyTopic}, quizgen.EmergencyQuestionCount)
	return &model.QuizData{
		Questions: questions,
		ExamInfo: model.ExamInfo{
			Name:           quizgen.EmergencyExamName,
			Type:           quizTypeLabel(model.QuizTypeComplete),
			TotalQuestions: len(questions),
		},
		Source: model.QuizSourceFallback,
	}
}

func (s *QuizService) cachedQuiz(ctx context.Context, key string) *model.QuizData {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil // Cache miss or Redis error — regenerate either way
	}
	var data model.QuizData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return &data
}

func (s *QuizService) cacheQuiz(ctx context.Context, key string, data *model.QuizData) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to cache quiz payload")
	}
}

func quizTypeLabel(t model.QuizType) string {
	if t == model.QuizTypeComplete {
		return "Complete Quiz"
	}
	return "Custom Quiz"
}
