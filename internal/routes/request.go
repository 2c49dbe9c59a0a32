package routes

import (
	"github.com/labstack/echo/v4"

	"sales-request-system/internal/controllers"
	"sales-request-system/pkg/middleware"
)

// Reads are open, mutations need a valid access token.
func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController, authMW *middleware.AuthMiddleware) {
	api.GET("/requests", ctrl.GetRequests)
	api.GET("/requests/:id", ctrl.FindRequest)
	api.GET("/requests/:id/logs", ctrl.GetRequestLogs)

	api.POST("/requests", ctrl.CreateRequest, authMW.Auth)
	api.PUT("/requests/:id", ctrl.UpdateRequest, authMW.Auth)
	api.DELETE("/requests/:id", ctrl.DeleteRequest, authMW.Auth)
}
