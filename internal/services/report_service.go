package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/report"
)

// reportService computes spending and goal reports. It fetches the
// user's records and folds them through the pure functions in the
// report package; nothing is cached between requests.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// loadExpenses fetches all of a user's expenses dated on or after cutoff.
// A zero cutoff loads everything.
func (s *reportService) loadExpenses(userID string, cutoff time.Time) ([]models.Expense, error) {
	query := s.db.Where("user_id = ?", userID)
	if !cutoff.IsZero() {
		query = query.Where("date >= ?", cutoff)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetSpendingSummary returns the reference month's total, its change
// against the previous month, and the top spending category.
func (s *reportService) GetSpendingSummary(userID string, ref time.Time) (*SpendingSummary, error) {
	// Two calendar months cover both the total and the comparison.
	cutoff := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	expenses, err := s.loadExpenses(userID, cutoff)
	if err != nil {
		return nil, err
	}

	var currentMonth []models.Expense
	for _, e := range expenses {
		if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
			currentMonth = append(currentMonth, e)
		}
	}

	return &SpendingSummary{
		MonthLabel:        ref.Format("Jan 2006"),
		MonthlyTotal:      report.MonthlyTotal(expenses, ref),
		MonthOverMonthPct: report.MonthOverMonthChange(expenses, ref),
		TopCategory:       report.CategoryBreakdown(currentMonth).TopCategory,
		ExpenseCount:      len(currentMonth),
	}, nil
}

// GetCategoryBreakdown returns the per-category decomposition of all of
// the user's spending.
func (s *reportService) GetCategoryBreakdown(userID string) (*report.Breakdown, error) {
	expenses, err := s.loadExpenses(userID, time.Time{})
	if err != nil {
		return nil, err
	}

	breakdown := report.CategoryBreakdown(expenses)
	return &breakdown, nil
}

// GetMonthlyTrend returns per-month totals for the trailing window ending
// at ref's month, oldest first.
func (s *reportService) GetMonthlyTrend(userID string, ref time.Time, months int) ([]report.TrendPoint, error) {
	cutoff := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	expenses, err := s.loadExpenses(userID, cutoff)
	if err != nil {
		return nil, err
	}

	return report.MonthlyTrend(expenses, ref, months), nil
}

// GetWeekdayAverages returns average spending per day of the week across
// all of the user's expenses.
func (s *reportService) GetWeekdayAverages(userID string) (*report.WeekdaySummary, error) {
	expenses, err := s.loadExpenses(userID, time.Time{})
	if err != nil {
		return nil, err
	}

	summary := report.WeekdayAverages(expenses)
	return &summary, nil
}

// GetGoalsProgress returns per-goal and aggregate progress percentages.
func (s *reportService) GetGoalsProgress(userID string) (*GoalsProgress, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]GoalProgressEntry, 0, len(goals))
	for _, g := range goals {
		entries = append(entries, GoalProgressEntry{
			GoalID:        g.ID,
			Name:          g.Name,
			CurrentAmount: g.CurrentAmount,
			TargetAmount:  g.TargetAmount,
			Percent:       report.GoalPercent(g),
			Status:        g.Status,
		})
	}

	return &GoalsProgress{
		Goals:          entries,
		OverallPercent: report.OverallGoalPercent(goals),
	}, nil
}
