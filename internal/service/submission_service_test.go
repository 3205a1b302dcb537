package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCandidateID = "01HZXW5G8M4R6T2B9C3D1E7F0A"
	testInterviewID = "01HZXW5G8M4R6T2B9C3D1E7F0B"
	testQuestionID  = "01HZXW5G8M4R6T2B9C3D1E7F0C"
)

func newSubmissionFixtures() (*domain.Interview, *domain.Question) {
	interview := &domain.Interview{
		ID:          testInterviewID,
		OwnerID:     "owner-1",
		Title:       "Backend Screening",
		QuestionIDs: []string{testQuestionID},
	}
	question := &domain.Question{
		ID:      testQuestionID,
		Title:   "Which tool does your team use?",
		QType:   domain.MultipleChoice,
		Options: []string{"Slack", "Teams", "Discord"},
	}
	return interview, question
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T: %v", err, err)
	return verrs.ByField()[field]
}

func TestCreateSubmission_Success(t *testing.T) {
	interview, question := newSubmissionFixtures()
	mockSubmissionRepo := new(MockSubmissionRepository)
	mockInterviewRepo := new(MockInterviewRepository)
	mockQuestionRepo := new(MockQuestionRepository)

	mockInterviewRepo.On("GetInterviewByID", mock.Anything, testInterviewID).Return(interview, nil)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, testQuestionID).Return(question, nil)
	mockSubmissionRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.Submission")).
		Run(func(args mock.Arguments) {
			submission := args.Get(1).(*domain.Submission)
			submission.ID = "01HZXW5G8M4R6T2B9C3D1E7F0D"
		}).Return(nil)

	svc := NewSubmissionService(mockSubmissionRepo, mockInterviewRepo, mockQuestionRepo)
	resp, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:    testInterviewID,
		Question:     testQuestionID,
		AnswerText:   "Slack",
		ConsentGiven: true,
		Meta:         map[string]any{"source": "webapp"},
	})

	require.NoError(t, err)
	assert.Equal(t, testCandidateID, resp.Candidate)
	assert.Equal(t, "Slack", resp.AnswerText)
	assert.Nil(t, resp.MetricScore)
	assert.True(t, resp.ConsentGiven)
	mockSubmissionRepo.AssertExpectations(t)
}

func TestCreateSubmission_NormalizesOptionIndex(t *testing.T) {
	interview, question := newSubmissionFixtures()
	mockSubmissionRepo := new(MockSubmissionRepository)
	mockInterviewRepo := new(MockInterviewRepository)
	mockQuestionRepo := new(MockQuestionRepository)

	mockInterviewRepo.On("GetInterviewByID", mock.Anything, testInterviewID).Return(interview, nil)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, testQuestionID).Return(question, nil)
	mockSubmissionRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil)

	svc := NewSubmissionService(mockSubmissionRepo, mockInterviewRepo, mockQuestionRepo)
	resp, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:  testInterviewID,
		Question:   testQuestionID,
		AnswerText: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Discord", resp.AnswerText, "index answers are stored as the option text")
}

func TestCreateSubmission_MissingFields(t *testing.T) {
	svc := NewSubmissionService(new(MockSubmissionRepository), new(MockInterviewRepository), new(MockQuestionRepository))

	_, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{})
	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "interview"), "This field is required.")
	assert.Contains(t, fieldMessages(t, err, "question"), "This field is required.")
}

func TestCreateSubmission_UnknownInterview(t *testing.T) {
	mockInterviewRepo := new(MockInterviewRepository)
	mockInterviewRepo.On("GetInterviewByID", mock.Anything, "nope").Return(nil, nil)

	svc := NewSubmissionService(new(MockSubmissionRepository), mockInterviewRepo, new(MockQuestionRepository))
	_, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:  "nope",
		Question:   testQuestionID,
		AnswerText: "hello",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "interview"), "Unknown interview: nope")
}

func TestCreateSubmission_QuestionNotInInterview(t *testing.T) {
	interview, _ := newSubmissionFixtures()
	stray := &domain.Question{ID: "stray-question", Title: "Stray", QType: domain.OpenEnded}

	mockInterviewRepo := new(MockInterviewRepository)
	mockQuestionRepo := new(MockQuestionRepository)
	mockInterviewRepo.On("GetInterviewByID", mock.Anything, testInterviewID).Return(interview, nil)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "stray-question").Return(stray, nil)

	svc := NewSubmissionService(new(MockSubmissionRepository), mockInterviewRepo, mockQuestionRepo)
	_, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:  testInterviewID,
		Question:   "stray-question",
		AnswerText: "hello",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "question"),
		"This question is not part of the selected interview.")
}

func TestCreateSubmission_InvalidAnswerForType(t *testing.T) {
	interview, question := newSubmissionFixtures()
	mockInterviewRepo := new(MockInterviewRepository)
	mockQuestionRepo := new(MockQuestionRepository)
	mockInterviewRepo.On("GetInterviewByID", mock.Anything, testInterviewID).Return(interview, nil)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, testQuestionID).Return(question, nil)

	svc := NewSubmissionService(new(MockSubmissionRepository), mockInterviewRepo, mockQuestionRepo)
	_, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:  testInterviewID,
		Question:   testQuestionID,
		AnswerText: "Trello",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "answer_text"),
		"Answer must match one of the options or be a valid option index.")
}

func TestCreateSubmission_Duplicate(t *testing.T) {
	interview, question := newSubmissionFixtures()
	mockSubmissionRepo := new(MockSubmissionRepository)
	mockInterviewRepo := new(MockInterviewRepository)
	mockQuestionRepo := new(MockQuestionRepository)

	mockInterviewRepo.On("GetInterviewByID", mock.Anything, testInterviewID).Return(interview, nil)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, testQuestionID).Return(question, nil)
	mockSubmissionRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.Submission")).
		Return(domain.ErrDuplicateSubmission)

	svc := NewSubmissionService(mockSubmissionRepo, mockInterviewRepo, mockQuestionRepo)
	_, err := svc.CreateSubmission(context.Background(), testCandidateID, &dto.CreateSubmissionRequest{
		Interview:  testInterviewID,
		Question:   testQuestionID,
		AnswerText: "Slack",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, domain.NonFieldErrors), domain.DuplicateSubmissionMessage)
}

func TestListMySubmissions(t *testing.T) {
	now := time.Now()
	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("ListSubmissionsByCandidate", mock.Anything, testCandidateID).Return([]domain.Submission{
		{
			ID:          "sub-2",
			CandidateID: testCandidateID,
			InterviewID: testInterviewID,
			QuestionID:  testQuestionID,
			AnswerText:  "Slack",
			SubmittedAt: now,
		},
		{
			ID:          "sub-1",
			CandidateID: testCandidateID,
			InterviewID: testInterviewID,
			QuestionID:  "other-question",
			AnswerText:  "3",
			SubmittedAt: now.Add(-time.Hour),
		},
	}, nil)

	svc := NewSubmissionService(mockSubmissionRepo, new(MockInterviewRepository), new(MockQuestionRepository))
	resp, err := svc.ListMySubmissions(context.Background(), testCandidateID)

	require.NoError(t, err)
	require.Len(t, resp.Submissions, 2)
	assert.Equal(t, "sub-2", resp.Submissions[0].ID)
	assert.NotNil(t, resp.Submissions[0].Meta, "meta renders as an empty object, never null")
}

func TestListMySubmissions_RepositoryError(t *testing.T) {
	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("ListSubmissionsByCandidate", mock.Anything, testCandidateID).
		Return(nil, errors.New("ora: connection lost"))

	svc := NewSubmissionService(mockSubmissionRepo, new(MockInterviewRepository), new(MockQuestionRepository))
	_, err := svc.ListMySubmissions(context.Background(), testCandidateID)
	assert.Error(t, err)
}
