package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/handler"
	"interviewhub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionApp(svc *MockQuestionService) *fiber.App {
	h := handler.NewQuestionHandler(svc)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/api/questions", h.ListQuestions)
	app.Post("/api/questions", h.CreateQuestion)
	app.Get("/api/questions/:id", h.GetQuestion)
	return app
}

func TestQuestionHandler_ListQuestions(t *testing.T) {
	mockSvc := &MockQuestionService{}
	mockSvc.ListQuestionsFunc = func(ctx context.Context, filters domain.QuestionFilters) (*dto.QuestionListResponse, error) {
		assert.Equal(t, "Scale", filters.QType)
		assert.Equal(t, "team", filters.Search)
		return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{
			{ID: "q-1", Title: "Rate your team", QType: "Scale"},
		}}, nil
	}

	app := newQuestionApp(mockSvc)
	req := httptest.NewRequest("GET", "/api/questions?qtype=Scale&search=team", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.QuestionListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Questions, 1)
	assert.Equal(t, "Rate your team", body.Questions[0].Title)
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := &MockQuestionService{}
		mockSvc.CreateQuestionFunc = func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
			assert.Equal(t, "Which tool?", req.Title)
			return &dto.QuestionResponse{ID: "q-1", Title: req.Title, QType: req.QType}, nil
		}

		app := newQuestionApp(mockSvc)
		payload, _ := json.Marshal(dto.CreateQuestionRequest{
			Title:   "Which tool?",
			QType:   "Multiple Choice",
			Options: []string{"Slack", "Teams"},
		})
		req := httptest.NewRequest("POST", "/api/questions", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Validation Failure Renders Field Map", func(t *testing.T) {
		mockSvc := &MockQuestionService{}
		mockSvc.CreateQuestionFunc = func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
			return nil, domain.FieldErrors(
				domain.NewFieldError("options", "For Multiple Choice, provide a list of at least 2 non-empty options."),
			)
		}

		app := newQuestionApp(mockSvc)
		payload, _ := json.Marshal(dto.CreateQuestionRequest{Title: "Which tool?", QType: "Multiple Choice"})
		req := httptest.NewRequest("POST", "/api/questions", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body middleware.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Errors["options"],
			"For Multiple Choice, provide a list of at least 2 non-empty options.")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		app := newQuestionApp(&MockQuestionService{})
		req := httptest.NewRequest("POST", "/api/questions", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuestionHandler_GetQuestion(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := &MockQuestionService{}
		mockSvc.GetQuestionFunc = func(ctx context.Context, id string) (*dto.QuestionResponse, error) {
			assert.Equal(t, "q-1", id)
			return &dto.QuestionResponse{ID: "q-1", Title: "Found"}, nil
		}

		app := newQuestionApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest("GET", "/api/questions/q-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockQuestionService{}
		mockSvc.GetQuestionFunc = func(ctx context.Context, id string) (*dto.QuestionResponse, error) {
			return nil, domain.NewQuestionNotFoundError(id)
		}

		app := newQuestionApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest("GET", "/api/questions/ghost", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
