package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/entities"
	"sales-request-system/internal/export"
	"sales-request-system/internal/services"
	apperrors "sales-request-system/pkg/errors"
	"sales-request-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	pdfExporter   export.Exporter
	excelExporter export.Exporter
	logger        *zap.Logger
}

func NewReportController(
	reportService services.ReportServiceInterface,
	pdfExporter export.Exporter,
	excelExporter export.Exporter,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{
		reportService: reportService,
		pdfExporter:   pdfExporter,
		excelExporter: excelExporter,
		logger:        logger,
	}
}

// parseDate reads ?date=YYYY-MM-DD, defaulting to today.
func parseDate(ctx echo.Context) (time.Time, error) {
	param := ctx.QueryParam("date")
	if param == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", param)
	if err != nil {
		return time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, "date must be YYYY-MM-DD", err)
	}
	return t, nil
}

// parseWeek reads ?week=YYYY-Www, defaulting to the current ISO week.
func parseWeek(ctx echo.Context) (int, int, error) {
	param := ctx.QueryParam("week")
	if param == "" {
		year, week := time.Now().ISOWeek()
		return year, week, nil
	}
	var year, week int
	if _, err := fmt.Sscanf(param, "%d-W%d", &year, &week); err != nil || week < 1 || week > 53 {
		return 0, 0, apperrors.NewHttpError(http.StatusBadRequest, "week must be YYYY-Www", err)
	}
	return year, week, nil
}

// parseMonth reads ?month=YYYY-MM, defaulting to the current month.
func parseMonth(ctx echo.Context) (int, time.Month, error) {
	param := ctx.QueryParam("month")
	if param == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", param)
	if err != nil {
		return 0, 0, apperrors.NewHttpError(http.StatusBadRequest, "month must be YYYY-MM", err)
	}
	return t.Year(), t.Month(), nil
}

func (c *ReportController) GetDailyReport(ctx echo.Context) error {
	date, err := parseDate(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildDaily(ctx.Request().Context(), date)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewReportDataDTO(data), "Daily report generated", http.StatusOK)
}

func (c *ReportController) GetWeeklyReport(ctx echo.Context) error {
	year, week, err := parseWeek(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildWeekly(ctx.Request().Context(), year, week)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewReportDataDTO(data), "Weekly report generated", http.StatusOK)
}

func (c *ReportController) GetMonthlyReport(ctx echo.Context) error {
	year, month, err := parseMonth(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildMonthly(ctx.Request().Context(), year, month)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewReportDataDTO(data), "Monthly report generated", http.StatusOK)
}

func (c *ReportController) exporterFor(ctx echo.Context) (export.Exporter, error) {
	switch strings.ToLower(ctx.Param("format")) {
	case "pdf":
		return c.pdfExporter, nil
	case "excel":
		return c.excelExporter, nil
	default:
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "format must be pdf or excel", nil)
	}
}

func (c *ReportController) sendDocument(ctx echo.Context, exporter export.Exporter, data *entities.ReportData, baseName string) error {
	document, err := exporter.Render(data)
	if err != nil {
		c.logger.Error("report rendering failed", zap.String("file", baseName), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("%s.%s", baseName, exporter.FileExtension())
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, exporter.ContentType(), document)
}

func (c *ReportController) ExportDailyReport(ctx echo.Context) error {
	exporter, err := c.exporterFor(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	date, err := parseDate(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildDaily(ctx.Request().Context(), date)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.sendDocument(ctx, exporter, data, fmt.Sprintf("daily_report_%s", date.Format("2006-01-02")))
}

func (c *ReportController) ExportWeeklyReport(ctx echo.Context) error {
	exporter, err := c.exporterFor(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	year, week, err := parseWeek(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildWeekly(ctx.Request().Context(), year, week)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.sendDocument(ctx, exporter, data, fmt.Sprintf("weekly_report_%d_W%02d", year, week))
}

func (c *ReportController) ExportMonthlyReport(ctx echo.Context) error {
	exporter, err := c.exporterFor(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	year, month, err := parseMonth(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data, err := c.reportService.BuildMonthly(ctx.Request().Context(), year, month)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.sendDocument(ctx, exporter, data, fmt.Sprintf("monthly_report_%d_%02d", year, int(month)))
}
