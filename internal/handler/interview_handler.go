package handler

import (
	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/logger"
	"interviewhub/internal/middleware"
	"interviewhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InterviewHandler handles interview-related HTTP requests
type InterviewHandler struct {
	service service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

// callerID extracts the authenticated user id set by the auth middleware.
func callerID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	return userID, ok && userID != ""
}

// ListInterviews godoc
// @Summary List interviews
// @Description Returns all interviews, newest first, with expanded question summaries
// @Tags interviews
// @Produce json
// @Success 200 {object} dto.InterviewListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /interviews [get]
func (h *InterviewHandler) ListInterviews(c *fiber.Ctx) error {
	response, err := h.service.ListInterviews(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list interviews", zap.Error(err))
		return err
	}
	return c.JSON(response)
}

// CreateInterview godoc
// @Summary Create an interview
// @Description Creates an interview owned by the authenticated caller. Any owner value in the body is ignored.
// @Tags interviews
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param interview body dto.CreateInterviewRequest true "Interview"
// @Success 201 {object} dto.InterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /interviews [post]
func (h *InterviewHandler) CreateInterview(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed request body")
	}

	response, err := h.service.CreateInterview(c.Context(), ownerID, &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Interview created",
		zap.String("interviewID", response.ID),
		zap.String("ownerID", ownerID))
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetInterview godoc
// @Summary Get an interview
// @Description Returns a single interview by id with expanded question summaries
// @Tags interviews
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /interviews/{id} [get]
func (h *InterviewHandler) GetInterview(c *fiber.Ctx) error {
	id := c.Params("id")

	response, err := h.service.GetInterview(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// UpdateInterview godoc
// @Summary Update an interview
// @Description Applies a full or partial update. Only the owner may modify an interview.
// @Tags interviews
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param interview body dto.UpdateInterviewRequest true "Fields to update"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /interviews/{id} [put]
func (h *InterviewHandler) UpdateInterview(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	var req dto.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed request body")
	}

	response, err := h.service.UpdateInterview(c.Context(), userID, c.Params("id"), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Interview updated",
		zap.String("interviewID", response.ID),
		zap.String("userID", userID))
	return c.JSON(response)
}
