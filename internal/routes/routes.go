package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-request-system/internal/controllers"
	"sales-request-system/internal/export"
	"sales-request-system/internal/repositories"
	"sales-request-system/internal/services"
	"sales-request-system/pkg/config"
	"sales-request-system/pkg/middleware"
	"sales-request-system/pkg/service"
)

// InitRouter builds the whole dependency graph and registers every route
// under /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// Repositories.
	requestRepo := repositories.NewRequestRepository(dbConn)
	logRepo := repositories.NewRequestLogRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// Services.
	requestService := services.NewRequestService(dbConn, requestRepo, logRepo, userRepo, logger)
	reportService := services.NewReportService(requestRepo, logRepo, logger)
	dashboardService := services.NewDashboardService(requestRepo, cacheRepo, cfg, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo)

	// Exporters.
	pdfExporter := export.NewPDFExporter(cfg.Report.Organization)
	excelExporter := export.NewExcelExporter(cfg.Report.Organization)

	// Controllers.
	authController := controllers.NewAuthController(authService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	userController := controllers.NewUserController(userService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(reportService, pdfExporter, excelExporter, logger)

	runAuthRouter(api, authController)
	runRequestRouter(api, requestController, authMW)
	runUserRouter(api, userController, authMW)
	runDashboardRouter(api, dashboardController, authMW)
	runReportRouter(api, reportController, authMW)
}
