package routes

import (
	"github.com/labstack/echo/v4"

	"sales-request-system/internal/controllers"
	"sales-request-system/pkg/middleware"
)

func runUserRouter(api *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	api.GET("/users", ctrl.GetUsers, authMW.Auth)
	api.GET("/service-types", ctrl.GetServiceTypes)
}
