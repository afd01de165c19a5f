package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/report"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep, err := h.reports.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, "failed to build sales report", err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	reportType := c.Param("type")
	period := resolveQueryPeriod(c)

	bundle, err := h.reports.Build(c.Request.Context(), reportType, period)
	if err != nil {
		respondServiceError(c, "failed to build report", err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *ReportHandler) GetRows(c *gin.Context) {
	reportType := c.Param("type")
	period := resolveQueryPeriod(c)

	query := service.RowsQuery{
		Search:        strings.TrimSpace(c.Query("search")),
		SortField:     strings.ToLower(strings.TrimSpace(c.Query("sort_field"))),
		SortDirection: strings.ToLower(strings.TrimSpace(c.Query("sort_direction"))),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && limit > 0 {
		query.Limit = limit
	}

	columns, rows, err := h.reports.Rows(c.Request.Context(), reportType, period, query)
	if err != nil {
		respondServiceError(c, "failed to build report rows", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": columns,
		"rows":    rows,
		"total":   len(rows),
	})
}

func (h *ReportHandler) ExportReport(c *gin.Context) {
	reportType := c.Param("type")
	period := resolveQueryPeriod(c)

	name, err := h.exports.Export(c.Request.Context(), reportType, period)
	if err != nil {
		respondServiceError(c, "failed to export report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": name})
}

func (h *ReportHandler) ListExports(c *gin.Context) {
	reportType := c.Param("type")

	objects, err := h.exports.ListExports(c.Request.Context(), reportType)
	if err != nil {
		if errors.Is(err, service.ErrArchiveUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exports", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exports": objects,
		"total":   len(objects),
	})
}

// parseDateRange reads start/end query dates. Missing values default to the
// current calendar month.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	startRaw := strings.TrimSpace(c.Query("start"))
	endRaw := strings.TrimSpace(c.Query("end"))

	if startRaw == "" && endRaw == "" {
		period := report.ResolvePeriod(report.PeriodMonth, time.Now())
		return period.Start, period.End, nil
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date, expected YYYY-MM-DD")
	}

	// End date is inclusive in the query, exclusive in the engine.
	return start, end.AddDate(0, 0, 1), nil
}

func resolveQueryPeriod(c *gin.Context) domain.Period {
	token := strings.TrimSpace(c.DefaultQuery("period", report.PeriodMonth))
	return report.ResolvePeriod(token, time.Now())
}

func respondServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, report.ErrUnknownReport):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrLoadInFlight):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "report load already in progress"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
