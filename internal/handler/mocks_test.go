package handler_test

import (
	"context"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
)

// --- Manual Mocks ---

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc  func(ctx context.Context, filters domain.QuestionFilters) (*dto.QuestionListResponse, error)
	CreateQuestionFunc func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestionFunc    func(ctx context.Context, id string) (*dto.QuestionResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, filters domain.QuestionFilters) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, filters)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}

// MockInterviewService
type MockInterviewService struct {
	ListInterviewsFunc  func(ctx context.Context) (*dto.InterviewListResponse, error)
	CreateInterviewFunc func(ctx context.Context, ownerID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	GetInterviewFunc    func(ctx context.Context, id string) (*dto.InterviewResponse, error)
	UpdateInterviewFunc func(ctx context.Context, callerID, id string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
}

func (m *MockInterviewService) ListInterviews(ctx context.Context) (*dto.InterviewListResponse, error) {
	if m.ListInterviewsFunc != nil {
		return m.ListInterviewsFunc(ctx)
	}
	panic("MockInterviewService.ListInterviewsFunc not implemented")
}
func (m *MockInterviewService) CreateInterview(ctx context.Context, ownerID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	if m.CreateInterviewFunc != nil {
		return m.CreateInterviewFunc(ctx, ownerID, req)
	}
	panic("MockInterviewService.CreateInterviewFunc not implemented")
}
func (m *MockInterviewService) GetInterview(ctx context.Context, id string) (*dto.InterviewResponse, error) {
	if m.GetInterviewFunc != nil {
		return m.GetInterviewFunc(ctx, id)
	}
	panic("MockInterviewService.GetInterviewFunc not implemented")
}
func (m *MockInterviewService) UpdateInterview(ctx context.Context, callerID, id string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	if m.UpdateInterviewFunc != nil {
		return m.UpdateInterviewFunc(ctx, callerID, id, req)
	}
	panic("MockInterviewService.UpdateInterviewFunc not implemented")
}

// MockSubmissionService
type MockSubmissionService struct {
	ListMySubmissionsFunc func(ctx context.Context, candidateID string) (*dto.SubmissionListResponse, error)
	CreateSubmissionFunc  func(ctx context.Context, candidateID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
}

func (m *MockSubmissionService) ListMySubmissions(ctx context.Context, candidateID string) (*dto.SubmissionListResponse, error) {
	if m.ListMySubmissionsFunc != nil {
		return m.ListMySubmissionsFunc(ctx, candidateID)
	}
	panic("MockSubmissionService.ListMySubmissionsFunc not implemented")
}
func (m *MockSubmissionService) CreateSubmission(ctx context.Context, candidateID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	if m.CreateSubmissionFunc != nil {
		return m.CreateSubmissionFunc(ctx, candidateID, req)
	}
	panic("MockSubmissionService.CreateSubmissionFunc not implemented")
}

// MockUserService
type MockUserService struct {
	WhoAmIFunc func(ctx context.Context, userID string) (*dto.WhoAmIResponse, error)
}

func (m *MockUserService) WhoAmI(ctx context.Context, userID string) (*dto.WhoAmIResponse, error) {
	if m.WhoAmIFunc != nil {
		return m.WhoAmIFunc(ctx, userID)
	}
	panic("MockUserService.WhoAmIFunc not implemented")
}
