package service

import (
	"context"
	"fmt"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
)

// QuestionService defines question operations. Questions are a shared,
// unowned resource: anyone may read them, any authenticated caller may
// create them.
type QuestionService interface {
	ListQuestions(ctx context.Context, filters domain.QuestionFilters) (*dto.QuestionListResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
}

type questionServiceImpl struct {
	questionRepo  domain.QuestionRepository
	questionCache *QuestionCacheService
}

// NewQuestionService creates a new instance of QuestionService.
func NewQuestionService(questionRepo domain.QuestionRepository, questionCache *QuestionCacheService) QuestionService {
	return &questionServiceImpl{
		questionRepo:  questionRepo,
		questionCache: questionCache,
	}
}

func toQuestionResponse(q *domain.Question) *dto.QuestionResponse {
	if q == nil {
		return nil
	}
	return &dto.QuestionResponse{
		ID:        q.ID,
		Title:     q.Title,
		Body:      q.Body,
		QType:     string(q.QType),
		Tags:      q.Tags,
		Options:   q.Options,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toQuestionSummary(q *domain.Question) dto.QuestionSummary {
	return dto.QuestionSummary{
		ID:    q.ID,
		Title: q.Title,
		QType: string(q.QType),
		Tags:  q.Tags,
	}
}

// ListQuestions returns questions newest-first, narrowed by filters.
func (s *questionServiceImpl) ListQuestions(ctx context.Context, filters domain.QuestionFilters) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.ListQuestions(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	responses := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, *toQuestionResponse(&questions[i]))
	}
	return &dto.QuestionListResponse{Questions: responses}, nil
}

// CreateQuestion validates and persists a new question. No ownership is
// assigned.
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	qtype := domain.QuestionType(req.QType)
	if req.QType == "" {
		qtype = domain.OpenEnded
	}

	question := domain.NewQuestion(req.Title, req.Body, qtype, req.Tags, req.Options)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	if s.questionCache != nil {
		s.questionCache.InvalidateQuestion(ctx, question.ID)
	}
	return toQuestionResponse(question), nil
}

// GetQuestion returns a single question, served from the cache when
// one is wired.
func (s *questionServiceImpl) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	if s.questionCache != nil {
		return s.questionCache.GetQuestion(ctx, id)
	}

	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return toQuestionResponse(question), nil
}
