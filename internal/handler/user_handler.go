package handler

import (
	"errors"

	"interviewhub/internal/logger"
	"interviewhub/internal/middleware"
	"interviewhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// WhoAmI returns the identity of the authenticated caller.
// @Summary Who am I
// @Description Returns the identity behind the presented credential.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.WhoAmIResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /whoami [get]
func (h *UserHandler) WhoAmI(c *fiber.Ctx) error {
	appLogger := logger.Get()
	userID, ok := callerID(c)
	if !ok {
		appLogger.Warn("User ID not found in context for WhoAmI", zap.String("path", c.Path()))
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	response, err := h.userService.WhoAmI(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			appLogger.Info("User behind credential not found", zap.String("userID", userID))
			return c.Status(fiber.StatusNotFound).JSON(middleware.ErrorResponse{
				Code: "USER_NOT_FOUND", Message: err.Error(), Status: fiber.StatusNotFound,
			})
		}
		appLogger.Error("Failed to resolve caller identity", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return c.JSON(response)
}
