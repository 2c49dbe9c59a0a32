package routes

import (
	"github.com/labstack/echo/v4"

	"sales-request-system/internal/controllers"
	"sales-request-system/pkg/middleware"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	reports := api.Group("/reports", authMW.Auth)

	reports.GET("/daily", ctrl.GetDailyReport)
	reports.GET("/weekly", ctrl.GetWeeklyReport)
	reports.GET("/monthly", ctrl.GetMonthlyReport)

	reports.GET("/daily/export/:format", ctrl.ExportDailyReport)
	reports.GET("/weekly/export/:format", ctrl.ExportWeeklyReport)
	reports.GET("/monthly/export/:format", ctrl.ExportMonthlyReport)
}
