package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"starthobby-backend/internal/llm"
	"starthobby-backend/internal/model"
	"starthobby-backend/internal/repository"
	"starthobby-backend/pkg/logging"
)

type EvaluationService interface {
	EvaluateAnswers(ctx context.Context, quizID, userID uint, answers []model.SubmittedAnswer) (*model.RecommendationResult, error)
	SaveRecommendation(userID uint, req *model.SaveRecommendationRequest) error
	GetRecommendations(userID uint) ([]model.Recommendation, error)
}

type evaluationService struct {
	quizRepo  repository.QuizRepository
	recRepo   repository.RecommendationRepository
	generator llm.TextGenerator
}

func NewEvaluationService(
	quizRepo repository.QuizRepository,
	recRepo repository.RecommendationRepository,
	generator llm.TextGenerator,
) EvaluationService {
	return &evaluationService{
		quizRepo:  quizRepo,
		recRepo:   recRepo,
		generator: generator,
	}
}

// EvaluateAnswers runs the full pipeline: resolve the submitted answers
// against the quiz graph, render the prompt, call the engine, and
// validate its reply. The result is returned to the caller; persisting
// it is a separate operation.
func (s *evaluationService) EvaluateAnswers(ctx context.Context, quizID, userID uint, answers []model.SubmittedAnswer) (*model.RecommendationResult, error) {
	pairs, err := s.resolveAnswers(quizID, answers)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrNoValidAnswers
	}

	prompt := llm.BuildPrompt(pairs)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := llm.ParseRecommendation(raw)
	if err != nil {
		return nil, err
	}

	logging.Info("evaluated quiz %d for user %d: %s, %d hobbies",
		quizID, userID, result.PersonalityType, len(result.SuggestedHobbies))
	return result, nil
}

// resolveAnswers maps each submitted triple to authoritative question
// and option text. A triple whose identifiers do not form a real
// quiz->question->option chain is dropped without failing the call;
// output order follows input order.
func (s *evaluationService) resolveAnswers(quizID uint, answers []model.SubmittedAnswer) ([]model.QAPair, error) {
	pairs := make([]model.QAPair, 0, len(answers))
	for _, a := range answers {
		pair, ok, err := s.quizRepo.ResolveAnswer(quizID, a.QuestionID, a.SelectedOptionID)
		if err != nil {
			return nil, fmt.Errorf("resolve answer (question %d, option %d): %w", a.QuestionID, a.SelectedOptionID, err)
		}
		if !ok {
			logging.Warn("dropping answer not matching quiz %d: question %d, option %d",
				quizID, a.QuestionID, a.SelectedOptionID)
			continue
		}
		pairs = append(pairs, *pair)
	}
	return pairs, nil
}

// SaveRecommendation persists caller-supplied recommendation fields as
// one new row. Fields are taken as-is; hobbies and reasons arrive as
// parallel sequences and are zipped by index.
func (s *evaluationService) SaveRecommendation(userID uint, req *model.SaveRecommendationRequest) error {
	hobbies := make([]model.HobbySuggestion, 0, len(req.SuggestedHobbies))
	for i, hobby := range req.SuggestedHobbies {
		reason := ""
		if i < len(req.Reasons) {
			reason = req.Reasons[i]
		}
		hobbies = append(hobbies, model.HobbySuggestion{Hobby: hobby, Reason: reason})
	}

	strengthsBlob, err := json.Marshal(req.Strengths)
	if err != nil {
		return fmt.Errorf("encode strengths: %w", err)
	}
	hobbiesBlob, err := json.Marshal(hobbies)
	if err != nil {
		return fmt.Errorf("encode suggested hobbies: %w", err)
	}

	rec := &model.Recommendation{
		EvaluationID:       uuid.New().String(),
		UserID:             userID,
		PersonalityType:    req.PersonalityType,
		PersonalitySummary: req.PersonalitySummary,
		Strengths:          string(strengthsBlob),
		SuggestedHobbies:   string(hobbiesBlob),
		GeneratedAt:        time.Now().UTC(),
	}

	if err := s.recRepo.Save(rec); err != nil {
		return fmt.Errorf("store recommendation: %w", err)
	}
	logging.Info("stored recommendation %s for user %d", rec.EvaluationID, userID)
	return nil
}

func (s *evaluationService) GetRecommendations(userID uint) ([]model.Recommendation, error) {
	return s.recRepo.GetByUser(userID)
}
