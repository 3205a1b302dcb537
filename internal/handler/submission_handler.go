package handler

import (
	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/logger"
	"interviewhub/internal/middleware"
	"interviewhub/internal/service"
	"interviewhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmissionHandler handles submission-related HTTP requests
type SubmissionHandler struct {
	service   service.SubmissionService
	validator *validation.Validator
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(service service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListMySubmissions godoc
// @Summary List my submissions
// @Description Returns the authenticated caller's submissions, newest first. There is no cross-user visibility.
// @Tags submissions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /submissions [get]
func (h *SubmissionHandler) ListMySubmissions(c *fiber.Ctx) error {
	candidateID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	response, err := h.service.ListMySubmissions(c.Context(), candidateID)
	if err != nil {
		logger.Get().Error("Failed to list submissions",
			zap.String("candidateID", candidateID), zap.Error(err))
		return err
	}
	return c.JSON(response)
}

// CreateSubmission godoc
// @Summary Submit an answer
// @Description Records the caller's answer to one question of an interview. Each question may be answered once per interview.
// @Tags submissions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param submission body dto.CreateSubmissionRequest true "Submission"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /submissions/create [post]
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	candidateID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed request body")
	}

	if errs := h.validator.ValidateCreateSubmissionShape(req.Interview, req.Question, req.AnswerText); len(errs) > 0 {
		return errs
	}

	response, err := h.service.CreateSubmission(c.Context(), candidateID, &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Submission created",
		zap.String("submissionID", response.ID),
		zap.String("candidateID", candidateID),
		zap.String("interviewID", response.Interview),
		zap.String("questionID", response.Question))
	return c.Status(fiber.StatusCreated).JSON(response)
}
