package routes

import (
	"github.com/labstack/echo/v4"

	"sales-request-system/internal/controllers"
	"sales-request-system/pkg/middleware"
)

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	api.GET("/dashboard/stats", ctrl.GetStats, authMW.Auth)
}
