package service

import (
	"context"
	"errors"
	"fmt"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/logger"

	"go.uber.org/zap"
)

// SubmissionService defines submission operations. Submissions are
// attributable only to their candidate; the caller identity is always
// passed explicitly from the handler.
type SubmissionService interface {
	ListMySubmissions(ctx context.Context, candidateID string) (*dto.SubmissionListResponse, error)
	CreateSubmission(ctx context.Context, candidateID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
}

type submissionServiceImpl struct {
	submissionRepo domain.SubmissionRepository
	interviewRepo  domain.InterviewRepository
	questionRepo   domain.QuestionRepository
}

// NewSubmissionService creates a new instance of SubmissionService.
func NewSubmissionService(
	submissionRepo domain.SubmissionRepository,
	interviewRepo domain.InterviewRepository,
	questionRepo domain.QuestionRepository,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		interviewRepo:  interviewRepo,
		questionRepo:   questionRepo,
	}
}

func toSubmissionResponse(s *domain.Submission) *dto.SubmissionResponse {
	if s == nil {
		return nil
	}
	meta := s.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	return &dto.SubmissionResponse{
		ID:           s.ID,
		Candidate:    s.CandidateID,
		Interview:    s.InterviewID,
		Question:     s.QuestionID,
		AnswerText:   s.AnswerText,
		MetricScore:  s.MetricScore,
		IsAnonymous:  s.IsAnonymous,
		ConsentGiven: s.ConsentGiven,
		Meta:         meta,
		SubmittedAt:  s.SubmittedAt,
	}
}

// ListMySubmissions returns the caller's own submissions newest-first.
// There is no cross-user visibility.
func (s *submissionServiceImpl) ListMySubmissions(ctx context.Context, candidateID string) (*dto.SubmissionListResponse, error) {
	submissions, err := s.submissionRepo.ListSubmissionsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *toSubmissionResponse(&submissions[i]))
	}
	return &dto.SubmissionListResponse{Submissions: responses}, nil
}

// CreateSubmission runs the validation pipeline and persists the
// answer. The candidate is always the authenticated caller; the metric
// score and submission time are never taken from the request.
func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, candidateID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	var errs domain.ValidationErrors
	if req.Interview == "" {
		errs = append(errs, domain.NewMissingFieldError("interview"))
	}
	if req.Question == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	interview, err := s.interviewRepo.GetInterviewByID(ctx, req.Interview)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve interview: %w", err)
	}
	if interview == nil {
		return nil, domain.FieldErrors(domain.NewFieldError("interview",
			fmt.Sprintf("Unknown interview: %s", req.Interview)))
	}

	question, err := s.questionRepo.GetQuestionByID(ctx, req.Question)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve question: %w", err)
	}
	if question == nil {
		return nil, domain.FieldErrors(domain.NewFieldError("question",
			fmt.Sprintf("Unknown question: %s", req.Question)))
	}

	if !domain.HasQuestion(interview.QuestionIDs, question.ID) {
		return nil, domain.FieldErrors(domain.NewFieldError("question",
			"This question is not part of the selected interview."))
	}

	normalizedAnswer, err := question.ValidateAnswer(req.AnswerText)
	if err != nil {
		return nil, err
	}

	submission := domain.NewSubmission(candidateID, interview.ID, question.ID, normalizedAnswer)
	submission.IsAnonymous = req.IsAnonymous
	submission.ConsentGiven = req.ConsentGiven
	submission.Meta = req.Meta
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	if err := s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			// The store-level uniqueness race resolves here: the loser
			// sees a client-facing duplicate error, never a raw
			// constraint violation.
			logger.Get().Info("Duplicate submission rejected",
				zap.String("candidateID", candidateID),
				zap.String("interviewID", interview.ID),
				zap.String("questionID", question.ID))
			return nil, domain.FieldErrors(domain.NewNonFieldError(domain.DuplicateSubmissionMessage))
		}
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return toSubmissionResponse(submission), nil
}
