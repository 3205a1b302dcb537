package service

import (
	"context"
	"fmt"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
)

// InterviewService defines interview operations. Interviews are owned
// by their creating caller; mutation is owner-only.
type InterviewService interface {
	ListInterviews(ctx context.Context) (*dto.InterviewListResponse, error)
	CreateInterview(ctx context.Context, ownerID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	GetInterview(ctx context.Context, id string) (*dto.InterviewResponse, error)
	UpdateInterview(ctx context.Context, callerID, id string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
}

type interviewServiceImpl struct {
	interviewRepo domain.InterviewRepository
	questionRepo  domain.QuestionRepository
	userRepo      domain.UserRepository
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(
	interviewRepo domain.InterviewRepository,
	questionRepo domain.QuestionRepository,
	userRepo domain.UserRepository,
) InterviewService {
	return &interviewServiceImpl{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		userRepo:      userRepo,
	}
}

// dedupeIDs collapses duplicates while preserving first-seen order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// resolveQuestionSet deduplicates ids and verifies that every id
// references an existing question. It returns the resolved questions
// for summary rendering.
func (s *interviewServiceImpl) resolveQuestionSet(ctx context.Context, ids []string) ([]string, []domain.Question, error) {
	questionIDs := dedupeIDs(ids)
	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, questionIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve question set: %w", err)
	}
	if len(questions) != len(questionIDs) {
		found := make(map[string]struct{}, len(questions))
		for _, q := range questions {
			found[q.ID] = struct{}{}
		}
		for _, id := range questionIDs {
			if _, ok := found[id]; !ok {
				return nil, nil, domain.FieldErrors(domain.NewFieldError("questions",
					fmt.Sprintf("Unknown question: %s", id)))
			}
		}
	}
	return questionIDs, questions, nil
}

// resolveParticipantSet deduplicates ids and verifies that every id
// references an existing user.
func (s *interviewServiceImpl) resolveParticipantSet(ctx context.Context, ids []string) ([]string, error) {
	userIDs := dedupeIDs(ids)
	ok, err := s.userRepo.UserIDsExist(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participant set: %w", err)
	}
	if !ok {
		return nil, domain.FieldErrors(domain.NewFieldError("allowed_participants",
			"One or more participants do not exist."))
	}
	return userIDs, nil
}

func toInterviewResponse(iv *domain.Interview, questions []domain.Question) *dto.InterviewResponse {
	if iv == nil {
		return nil
	}
	summaries := make([]dto.QuestionSummary, 0, len(questions))
	for i := range questions {
		summaries = append(summaries, toQuestionSummary(&questions[i]))
	}
	questionIDs := iv.QuestionIDs
	if questionIDs == nil {
		questionIDs = []string{}
	}
	participants := iv.AllowedParticipantIDs
	if participants == nil {
		participants = []string{}
	}
	return &dto.InterviewResponse{
		ID:                  iv.ID,
		Owner:               iv.OwnerID,
		Title:               iv.Title,
		Description:         iv.Description,
		Questions:           questionIDs,
		QuestionDetails:     summaries,
		ScheduledAt:         iv.ScheduledAt,
		IsPublished:         iv.IsPublished,
		Confidentiality:     string(iv.Confidentiality),
		ProjectCode:         iv.ProjectCode,
		AllowedParticipants: participants,
		CreatedAt:           iv.CreatedAt,
		UpdatedAt:           iv.UpdatedAt,
	}
}

// ListInterviews returns all interviews newest-first. Publish state and
// the allowed-participant set are not used to scope the listing.
func (s *interviewServiceImpl) ListInterviews(ctx context.Context) (*dto.InterviewListResponse, error) {
	interviews, err := s.interviewRepo.ListInterviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	// One batch fetch covers the summaries of every listed interview.
	var allIDs []string
	for i := range interviews {
		allIDs = append(allIDs, interviews[i].QuestionIDs...)
	}
	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, dedupeIDs(allIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load question summaries: %w", err)
	}
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	responses := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		iv := &interviews[i]
		ivQuestions := make([]domain.Question, 0, len(iv.QuestionIDs))
		for _, qid := range iv.QuestionIDs {
			if q, ok := byID[qid]; ok {
				ivQuestions = append(ivQuestions, q)
			}
		}
		responses = append(responses, *toInterviewResponse(iv, ivQuestions))
	}
	return &dto.InterviewListResponse{Interviews: responses}, nil
}

// CreateInterview persists a new interview owned by ownerID. Any
// client-supplied owner value never reaches this path; the handler
// passes the authenticated caller explicitly.
func (s *interviewServiceImpl) CreateInterview(ctx context.Context, ownerID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	interview := domain.NewInterview(ownerID, req.Title, req.Description)
	interview.IsPublished = req.IsPublished
	interview.ScheduledAt = req.ScheduledAt
	interview.ProjectCode = req.ProjectCode
	if req.Confidentiality != "" {
		interview.Confidentiality = domain.Confidentiality(req.Confidentiality)
	}

	questionIDs, questions, err := s.resolveQuestionSet(ctx, req.Questions)
	if err != nil {
		return nil, err
	}
	interview.QuestionIDs = questionIDs

	participantIDs, err := s.resolveParticipantSet(ctx, req.AllowedParticipants)
	if err != nil {
		return nil, err
	}
	interview.AllowedParticipantIDs = participantIDs

	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.interviewRepo.CreateInterview(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return toInterviewResponse(interview, questions), nil
}

// GetInterview returns a single interview with expanded question
// summaries.
func (s *interviewServiceImpl) GetInterview(ctx context.Context, id string) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	if interview == nil {
		return nil, domain.NewInterviewNotFoundError(id)
	}

	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, interview.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load question summaries: %w", err)
	}
	return toInterviewResponse(interview, questions), nil
}

// UpdateInterview applies a full or partial update. Only the owner may
// mutate an interview. A supplied questions list fully replaces the
// association set; an omitted one leaves it untouched.
func (s *interviewServiceImpl) UpdateInterview(ctx context.Context, callerID, id string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	if interview == nil {
		return nil, domain.NewInterviewNotFoundError(id)
	}
	if interview.OwnerID != callerID {
		return nil, domain.NewForbiddenError("Only the owner may modify this interview")
	}

	if req.Title != nil {
		interview.Title = *req.Title
	}
	if req.Description != nil {
		interview.Description = *req.Description
	}
	if req.IsPublished != nil {
		interview.IsPublished = *req.IsPublished
	}
	if req.ScheduledAt != nil {
		interview.ScheduledAt = req.ScheduledAt
	}
	if req.Confidentiality != nil {
		interview.Confidentiality = domain.Confidentiality(*req.Confidentiality)
	}
	if req.ProjectCode != nil {
		interview.ProjectCode = *req.ProjectCode
	}

	replaceQuestions := req.Questions != nil
	if replaceQuestions {
		questionIDs, _, err := s.resolveQuestionSet(ctx, *req.Questions)
		if err != nil {
			return nil, err
		}
		interview.QuestionIDs = questionIDs
	}

	replaceParticipants := req.AllowedParticipants != nil
	if replaceParticipants {
		participantIDs, err := s.resolveParticipantSet(ctx, *req.AllowedParticipants)
		if err != nil {
			return nil, err
		}
		interview.AllowedParticipantIDs = participantIDs
	}

	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.interviewRepo.UpdateInterview(ctx, interview, replaceQuestions, replaceParticipants); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, interview.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load question summaries: %w", err)
	}
	return toInterviewResponse(interview, questions), nil
}
