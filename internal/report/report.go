// Package report computes spending summaries over a user's expense and
// goal records. Every function is a pure fold over its input slice: no
// database access, no caching, and an empty input always yields zero
// values rather than an error.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pennywise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns part/whole as a whole percent, rounded half-up.
// A non-positive whole yields 0 instead of dividing by zero.
func percentOf(part, whole decimal.Decimal) int {
	if whole.Sign() <= 0 {
		return 0
	}
	return int(part.Div(whole).Mul(hundred).Round(0).IntPart())
}

// monthKey maps a date to a sortable calendar-month index.
func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// MonthlyTotal sums the amounts of expenses dated in the calendar month
// and year of ref.
func MonthlyTotal(expenses []models.Expense, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// MonthOverMonthChange returns the percent change between ref's calendar
// month total and the previous calendar month's total. When the previous
// month has no spending the change is 0, regardless of the current total.
func MonthOverMonthChange(expenses []models.Expense, ref time.Time) int {
	current := MonthlyTotal(expenses, ref)
	previous := MonthlyTotal(expenses, ref.AddDate(0, 0, -ref.Day()))

	if previous.Sign() <= 0 {
		return 0
	}
	return int(current.Sub(previous).Div(previous).Mul(hundred).Round(0).IntPart())
}

// CategorySum holds one category's share of total spending.
type CategorySum struct {
	Category models.ExpenseCategory `json:"category"`
	Total    decimal.Decimal        `json:"total"`
	Percent  int                    `json:"percent"`
}

// Breakdown is the per-category decomposition of a set of expenses.
// Categories with no expenses are omitted; TopCategory is empty when
// there are no expenses at all.
type Breakdown struct {
	Total       decimal.Decimal        `json:"total"`
	Categories  []CategorySum          `json:"categories"`
	TopCategory models.ExpenseCategory `json:"top_category,omitempty"`
}

// CategoryBreakdown groups expenses by category, sorts the sums
// descending, and computes each category's whole-percent share.
func CategoryBreakdown(expenses []models.Expense) Breakdown {
	sums := make(map[models.ExpenseCategory]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	categories := make([]CategorySum, 0, len(sums))
	// Walk the closed set so ties break in a stable, documented order.
	for _, c := range models.ExpenseCategories {
		sum, ok := sums[c]
		if !ok {
			continue
		}
		categories = append(categories, CategorySum{
			Category: c,
			Total:    sum,
			Percent:  percentOf(sum, total),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	b := Breakdown{Total: total, Categories: categories}
	if len(categories) > 0 {
		b.TopCategory = categories[0].Category
	}
	return b
}

// TrendPoint is one month's total in a spending trend, labeled for display.
type TrendPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTrend sums expenses per calendar month for the trailing months
// window ending at ref's month, oldest first. Months with no expenses
// appear with a zero total.
func MonthlyTrend(expenses []models.Expense, ref time.Time, months int) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	totals := make(map[int]decimal.Decimal)
	for _, e := range expenses {
		k := monthKey(e.Date)
		totals[k] = totals[k].Add(e.Amount)
	}

	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	points := make([]TrendPoint, 0, months)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		total, ok := totals[monthKey(m)]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, TrendPoint{
			Label: m.Format("Jan 2006"),
			Total: total,
		})
	}
	return points
}

// WeekdayAverage is the average expense amount for one day of the week.
type WeekdayAverage struct {
	Weekday int             `json:"weekday"` // 0=Sunday .. 6=Saturday
	Average decimal.Decimal `json:"average"`
}

// WeekdaySummary holds per-weekday averages plus the weekday with the
// highest average. Busiest is nil when there are no expenses.
type WeekdaySummary struct {
	Averages []WeekdayAverage `json:"averages"`
	Busiest  *int             `json:"busiest_weekday,omitempty"`
}

// WeekdayAverages buckets expenses by day of week and averages each
// bucket. Empty buckets average to zero. On a tie the earlier weekday
// wins.
func WeekdayAverages(expenses []models.Expense) WeekdaySummary {
	var sums [7]decimal.Decimal
	var counts [7]int64
	for _, e := range expenses {
		d := int(e.Date.Weekday())
		sums[d] = sums[d].Add(e.Amount)
		counts[d]++
	}

	averages := make([]WeekdayAverage, 7)
	for d := 0; d < 7; d++ {
		avg := decimal.Zero
		if counts[d] > 0 {
			avg = sums[d].Div(decimal.NewFromInt(counts[d])).Round(2)
		}
		averages[d] = WeekdayAverage{Weekday: d, Average: avg}
	}

	summary := WeekdaySummary{Averages: averages}
	if len(expenses) > 0 {
		busiest := 0
		for d := 1; d < 7; d++ {
			if averages[d].Average.GreaterThan(averages[busiest].Average) {
				busiest = d
			}
		}
		summary.Busiest = &busiest
	}
	return summary
}

// GoalPercent returns a goal's progress as a whole percent of its target,
// rounded half-up. A non-positive target yields 0.
func GoalPercent(g models.Goal) int {
	return percentOf(g.CurrentAmount, g.TargetAmount)
}

// OverallGoalPercent returns aggregate progress across all goals:
// the sum of current amounts over the sum of targets, as a whole percent.
func OverallGoalPercent(goals []models.Goal) int {
	current := decimal.Zero
	target := decimal.Zero
	for _, g := range goals {
		current = current.Add(g.CurrentAmount)
		target = target.Add(g.TargetAmount)
	}
	return percentOf(current, target)
}
