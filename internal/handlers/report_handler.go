package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// ReportHandler handles spending and goal report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TrendQuery represents the query parameters for the monthly trend report.
type TrendQuery struct {
	Months int `form:"months" binding:"omitempty,trend_months"`
}

// refMonth resolves the optional month query parameter (YYYY-MM) to a
// reference time, defaulting to the current month.
func refMonth(c *gin.Context) (time.Time, error) {
	v := c.Query("month")
	if v == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month, expected YYYY-MM")
	}
	return t, nil
}

// GetSummary returns the headline spending summary for a month.
// @Summary     Spending summary
// @Description Get the month's total, month-over-month change, and top category
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Reference month (YYYY-MM, default current)"
// @Success     200 {object} services.SpendingSummary "Spending summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ref, err := refMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetSpendingSummary(userID, ref)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown returns spending grouped by category.
// @Summary     Category breakdown
// @Description Get total spending per category, sorted descending, with percent shares
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.Breakdown "Category breakdown"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetTrend returns the trailing monthly spending trend.
// @Summary     Monthly trend
// @Description Get per-month totals for a trailing window (1, 3, 6, 12, or 24 months)
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Window size in months (default 6)"
// @Success     200 {object} map[string][]report.TrendPoint "Trend points, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/trend [get]
func (h *ReportHandler) GetTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query TrendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be one of 1, 3, 6, 12, 24"))
		return
	}
	if query.Months == 0 {
		query.Months = 6
	}

	points, err := h.reportService.GetMonthlyTrend(userID, time.Now().UTC(), query.Months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": points})
}

// GetWeekdayAverages returns average spending per day of the week.
// @Summary     Weekday averages
// @Description Get average expense amount per weekday and the busiest weekday
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.WeekdaySummary "Weekday averages"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/weekdays [get]
func (h *ReportHandler) GetWeekdayAverages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetWeekdayAverages(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weekdays": summary})
}

// GetGoalsProgress returns per-goal and aggregate savings progress.
// @Summary     Goals progress
// @Description Get per-goal progress percentages and the aggregate across all goals
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GoalsProgress "Goals progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/goals [get]
func (h *ReportHandler) GetGoalsProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.reportService.GetGoalsProgress(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
