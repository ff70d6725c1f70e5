package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"caretier/internal/cache"
	"caretier/internal/engine"
	"caretier/internal/model"
	"caretier/internal/repository"
)

// AssessmentService runs the engine once per submission and persists the
// resulting immutable assessment for replay and downstream consumers.
type AssessmentService struct {
	repo        repository.AssessmentRepo
	cache       cache.RecommendationCache
	engine      *engine.Engine
	adjudicator engine.Adjudicator
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(repo repository.AssessmentRepo, c cache.RecommendationCache, eng *engine.Engine) *AssessmentService {
	return &AssessmentService{
		repo:   repo,
		cache:  c,
		engine: eng,
	}
}

// SetAdjudicator enables the external hours-band refinement.
func (s *AssessmentService) SetAdjudicator(a engine.Adjudicator) {
	s.adjudicator = a
}

// Submit evaluates a raw answer set and stores the produced recommendation.
// Cache failures are logged, never surfaced: the primary store is the source
// of truth.
func (s *AssessmentService) Submit(ctx context.Context, answers model.RawAnswers, effectFlags []string, compareHours bool) (*model.Assessment, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("answer set is empty")
	}

	rec := s.engine.Evaluate(ctx, answers, effectFlags, engine.Options{
		CompareHours: compareHours,
		Adjudicator:  s.adjudicator,
	})

	assessment := &model.Assessment{
		ID:             uuid.NewString(),
		Answers:        answers,
		EffectFlags:    effectFlags,
		Recommendation: rec,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}
	if err := s.cache.Set(ctx, assessment); err != nil {
		log.Printf("Warning: failed to cache assessment %s: %v", assessment.ID, err)
	}

	return assessment, nil
}

// Get reads a stored assessment, cache first.
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load assessment %s: %w", id, err)
	}
	if err := s.cache.Set(ctx, assessment); err != nil {
		log.Printf("Warning: failed to cache assessment %s: %v", id, err)
	}
	return assessment, nil
}

// List returns the most recent assessments.
func (s *AssessmentService) List(ctx context.Context, limit int64) ([]*model.Assessment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, limit)
}
