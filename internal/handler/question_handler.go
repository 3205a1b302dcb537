package handler

import (
	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/logger"
	"interviewhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns all questions, newest first, optionally narrowed by filters
// @Tags questions
// @Produce json
// @Param qtype query string false "Exact question type"
// @Param tag query string false "Case-insensitive substring over tags"
// @Param search query string false "Case-insensitive substring over title or body"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	filters := domain.QuestionFilters{
		QType:  c.Query("qtype"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}

	response, err := h.service.ListQuestions(c.Context(), filters)
	if err != nil {
		logger.Get().Error("Failed to list questions", zap.Error(err))
		return err
	}
	return c.JSON(response)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Creates a shared question. Multiple Choice questions need at least 2 non-empty options.
// @Tags questions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed request body")
	}

	response, err := h.service.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Question created", zap.String("questionID", response.ID))
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetQuestion godoc
// @Summary Get a question
// @Description Returns a single question by id
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	response, err := h.service.GetQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(response)
}
