package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-request-system/internal/services"
	"sales-request-system/pkg/constants"
	"sales-request-system/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	users, err := c.userService.GetUsers(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, users, "Users fetched", http.StatusOK)
}

// GetServiceTypes lists the selectable service types in their fixed order.
func (c *UserController) GetServiceTypes(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, constants.ServiceTypes, "Service types fetched", http.StatusOK)
}
