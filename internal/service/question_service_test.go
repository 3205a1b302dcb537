package service

import (
	"context"
	"errors"
	"testing"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion_Success(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("CreateQuestion", mock.Anything, mock.AnythingOfType("*domain.Question")).
		Run(func(args mock.Arguments) {
			q := args.Get(1).(*domain.Question)
			q.ID = "q-1"
		}).Return(nil)

	svc := NewQuestionService(mockQuestionRepo, nil)
	resp, err := svc.CreateQuestion(context.Background(), &dto.CreateQuestionRequest{
		Title:   "Which tool does your team use?",
		QType:   string(domain.MultipleChoice),
		Options: []string{"Slack", "Teams"},
		Tags:    []string{"tools"},
	})

	require.NoError(t, err)
	assert.Equal(t, "q-1", resp.ID)
	assert.Equal(t, string(domain.MultipleChoice), resp.QType)
	mockQuestionRepo.AssertExpectations(t)
}

func TestCreateQuestion_DefaultsToOpenEnded(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("CreateQuestion", mock.Anything, mock.AnythingOfType("*domain.Question")).Return(nil)

	svc := NewQuestionService(mockQuestionRepo, nil)
	resp, err := svc.CreateQuestion(context.Background(), &dto.CreateQuestionRequest{
		Title: "Tell us about your last project.",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.OpenEnded), resp.QType)
}

func TestCreateQuestion_MultipleChoiceNeedsOptions(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository), nil)

	_, err := svc.CreateQuestion(context.Background(), &dto.CreateQuestionRequest{
		Title:   "Which tool does your team use?",
		QType:   string(domain.MultipleChoice),
		Options: []string{"Slack"},
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "options"),
		"For Multiple Choice, provide a list of at least 2 non-empty options.")
}

func TestCreateQuestion_UnknownType(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository), nil)

	_, err := svc.CreateQuestion(context.Background(), &dto.CreateQuestionRequest{
		Title: "Odd one",
		QType: "Essay",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err, "qtype"), "Unknown question type: Essay")
}

func TestListQuestions_PassesFilters(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	filters := domain.QuestionFilters{QType: string(domain.Scale), Search: "team"}
	mockQuestionRepo.On("ListQuestions", mock.Anything, filters).Return([]domain.Question{
		{ID: "q-1", Title: "Rate your team", QType: domain.Scale},
	}, nil)

	svc := NewQuestionService(mockQuestionRepo, nil)
	resp, err := svc.ListQuestions(context.Background(), filters)

	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Rate your team", resp.Questions[0].Title)
	mockQuestionRepo.AssertExpectations(t)
}

func TestGetQuestion_NotFound(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "ghost").Return(nil, nil)

	svc := NewQuestionService(mockQuestionRepo, nil)
	_, err := svc.GetQuestion(context.Background(), "ghost")

	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeNotFound, derr.Code)
}

func TestGetQuestion_RepositoryError(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "q-1").
		Return(nil, errors.New("ora: connection lost"))

	svc := NewQuestionService(mockQuestionRepo, nil)
	_, err := svc.GetQuestion(context.Background(), "q-1")
	assert.Error(t, err)
}
