package services

import (
	"time"

	"github.com/shopspring/decimal"

	"pennywise/internal/models"
	"pennywise/internal/pagination"
	"pennywise/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	UpdateProfile(userID string, firstName, lastName, email *string) (*models.User, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Category *models.ExpenseCategory
	FromDate *time.Time
	ToDate   *time.Time
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID string, amount decimal.Decimal, category models.ExpenseCategory, description string, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, amount *decimal.Decimal, category *models.ExpenseCategory, description *string, date *time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount decimal.Decimal, targetDate *time.Time) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	UpdateGoal(userID, goalID string, name *string, targetAmount *decimal.Decimal, targetDate *time.Time, status *models.GoalStatus) (*models.Goal, error)
	AddFunds(userID, goalID string, amount decimal.Decimal) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
}

// SpendingSummary is the headline dashboard figure set: the reference
// month's total, its change against the previous month, and where most
// of the money went.
type SpendingSummary struct {
	MonthLabel        string                 `json:"month_label"`
	MonthlyTotal      decimal.Decimal        `json:"monthly_total"`
	MonthOverMonthPct int                    `json:"month_over_month_pct"`
	TopCategory       models.ExpenseCategory `json:"top_category,omitempty"`
	ExpenseCount      int                    `json:"expense_count"`
}

// GoalProgressEntry is one goal's progress snapshot.
type GoalProgressEntry struct {
	GoalID        string            `json:"goal_id"`
	Name          string            `json:"name"`
	CurrentAmount decimal.Decimal   `json:"current_amount"`
	TargetAmount  decimal.Decimal   `json:"target_amount"`
	Percent       int               `json:"percent"`
	Status        models.GoalStatus `json:"status"`
}

// GoalsProgress aggregates progress across all of a user's goals.
type GoalsProgress struct {
	Goals          []GoalProgressEntry `json:"goals"`
	OverallPercent int                 `json:"overall_percent"`
}

// ReportServicer defines the contract for spending and goal reports.
type ReportServicer interface {
	GetSpendingSummary(userID string, ref time.Time) (*SpendingSummary, error)
	GetCategoryBreakdown(userID string) (*report.Breakdown, error)
	GetMonthlyTrend(userID string, ref time.Time, months int) ([]report.TrendPoint, error)
	GetWeekdayAverages(userID string) (*report.WeekdaySummary, error)
	GetGoalsProgress(userID string) (*GoalsProgress, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
