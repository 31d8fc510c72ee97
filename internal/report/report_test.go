package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pennywise/internal/models"
)

func expense(amount string, category models.ExpenseCategory, date time.Time) models.Expense {
	return models.Expense{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTotal(t *testing.T) {
	ref := day(2026, time.March, 15)
	expenses := []models.Expense{
		expense("10.50", models.CategoryFood, day(2026, time.March, 1)),
		expense("4.50", models.CategoryTransport, day(2026, time.March, 31)),
		expense("99.99", models.CategoryBills, day(2026, time.February, 28)),
		expense("12.00", models.CategoryFood, day(2025, time.March, 10)), // same month, other year
	}

	total := MonthlyTotal(expenses, ref)
	if !total.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("expected 15.00, got %s", total)
	}
}

func TestMonthlyTotal_Empty(t *testing.T) {
	total := MonthlyTotal(nil, day(2026, time.March, 15))
	if !total.IsZero() {
		t.Errorf("expected zero total for empty input, got %s", total)
	}
}

func TestMonthOverMonthChange(t *testing.T) {
	t.Run("increase", func(t *testing.T) {
		expenses := []models.Expense{
			expense("100.00", models.CategoryFood, day(2026, time.February, 10)),
			expense("150.00", models.CategoryFood, day(2026, time.March, 10)),
		}
		if got := MonthOverMonthChange(expenses, day(2026, time.March, 20)); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
	})

	t.Run("decrease", func(t *testing.T) {
		expenses := []models.Expense{
			expense("200.00", models.CategoryFood, day(2026, time.February, 10)),
			expense("150.00", models.CategoryFood, day(2026, time.March, 10)),
		}
		if got := MonthOverMonthChange(expenses, day(2026, time.March, 20)); got != -25 {
			t.Errorf("expected -25, got %d", got)
		}
	})

	t.Run("zero_previous_month", func(t *testing.T) {
		expenses := []models.Expense{
			expense("500.00", models.CategoryShopping, day(2026, time.March, 5)),
		}
		if got := MonthOverMonthChange(expenses, day(2026, time.March, 20)); got != 0 {
			t.Errorf("expected 0 when previous month is empty, got %d", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := MonthOverMonthChange(nil, day(2026, time.March, 20)); got != 0 {
			t.Errorf("expected 0 for empty input, got %d", got)
		}
	})

	t.Run("january_looks_at_december", func(t *testing.T) {
		expenses := []models.Expense{
			expense("100.00", models.CategoryFood, day(2025, time.December, 31)),
			expense("110.00", models.CategoryFood, day(2026, time.January, 31)),
		}
		if got := MonthOverMonthChange(expenses, day(2026, time.January, 31)); got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t0 := day(2026, time.March, 10)
	expenses := []models.Expense{
		expense("50", models.CategoryFood, t0),
		expense("30", models.CategoryFood, t0),
		expense("20", models.CategoryTransport, t0),
	}

	b := CategoryBreakdown(expenses)

	if !b.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total 100, got %s", b.Total)
	}
	if len(b.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(b.Categories))
	}
	if b.Categories[0].Category != models.CategoryFood || !b.Categories[0].Total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected Food 80 first, got %s %s", b.Categories[0].Category, b.Categories[0].Total)
	}
	if b.Categories[0].Percent != 80 {
		t.Errorf("expected Food at 80%%, got %d", b.Categories[0].Percent)
	}
	if b.Categories[1].Category != models.CategoryTransport || b.Categories[1].Percent != 20 {
		t.Errorf("expected Transport at 20%%, got %s %d", b.Categories[1].Category, b.Categories[1].Percent)
	}
	if b.TopCategory != models.CategoryFood {
		t.Errorf("expected top category Food, got %s", b.TopCategory)
	}
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	b := CategoryBreakdown(nil)
	if !b.Total.IsZero() {
		t.Errorf("expected zero total, got %s", b.Total)
	}
	if len(b.Categories) != 0 {
		t.Errorf("expected no categories, got %d", len(b.Categories))
	}
	if b.TopCategory != "" {
		t.Errorf("expected empty top category, got %s", b.TopCategory)
	}
}

// The sum of category-bucketed totals must equal the sum of all amounts,
// and percentages must sum to 100 within a rounding error bounded by the
// number of categories.
func TestCategoryBreakdown_Conservation(t *testing.T) {
	t0 := day(2026, time.March, 10)
	expenses := []models.Expense{
		expense("33.33", models.CategoryFood, t0),
		expense("33.33", models.CategoryTransport, t0),
		expense("33.34", models.CategoryEntertainment, t0),
		expense("0.01", models.CategoryHealth, t0),
		expense("12.49", models.CategoryBills, t0),
		expense("7.77", models.CategoryOther, t0),
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	b := CategoryBreakdown(expenses)

	bucketed := decimal.Zero
	pctSum := 0
	for _, c := range b.Categories {
		bucketed = bucketed.Add(c.Total)
		pctSum += c.Percent
	}

	if !bucketed.Equal(total) {
		t.Errorf("bucketed totals %s != overall total %s", bucketed, total)
	}
	if !b.Total.Equal(total) {
		t.Errorf("breakdown total %s != overall total %s", b.Total, total)
	}
	bound := len(b.Categories)
	if pctSum < 100-bound || pctSum > 100+bound {
		t.Errorf("percentages sum to %d, outside 100±%d", pctSum, bound)
	}
}

func TestMonthlyTrend(t *testing.T) {
	expenses := []models.Expense{
		expense("10", models.CategoryFood, day(2026, time.January, 5)),
		expense("20", models.CategoryFood, day(2026, time.February, 5)),
		expense("5", models.CategoryBills, day(2026, time.February, 20)),
		expense("40", models.CategoryFood, day(2026, time.March, 5)),
		expense("999", models.CategoryFood, day(2025, time.November, 5)), // outside window
	}

	points := MonthlyTrend(expenses, day(2026, time.March, 15), 3)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	want := []struct {
		label string
		total string
	}{
		{"Jan 2026", "10"},
		{"Feb 2026", "25"},
		{"Mar 2026", "40"},
	}
	for i, w := range want {
		if points[i].Label != w.label {
			t.Errorf("point %d: expected label %s, got %s", i, w.label, points[i].Label)
		}
		if !points[i].Total.Equal(decimal.RequireFromString(w.total)) {
			t.Errorf("point %d: expected total %s, got %s", i, w.total, points[i].Total)
		}
	}
}

func TestMonthlyTrend_ZeroFill(t *testing.T) {
	expenses := []models.Expense{
		expense("10", models.CategoryFood, day(2026, time.March, 5)),
	}
	points := MonthlyTrend(expenses, day(2026, time.March, 15), 6)
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[0].Label != "Oct 2025" {
		t.Errorf("expected window to start at Oct 2025, got %s", points[0].Label)
	}
	for i := 0; i < 5; i++ {
		if !points[i].Total.IsZero() {
			t.Errorf("point %d: expected zero total, got %s", i, points[i].Total)
		}
	}
	if !points[5].Total.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10 in the final month, got %s", points[5].Total)
	}
}

func TestMonthlyTrend_YearBoundaryFromJanuary31(t *testing.T) {
	// AddDate from Jan 31 must not skip months when walking backwards.
	points := MonthlyTrend(nil, day(2026, time.January, 31), 3)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Label != "Nov 2025" || points[1].Label != "Dec 2025" || points[2].Label != "Jan 2026" {
		t.Errorf("unexpected labels: %s, %s, %s", points[0].Label, points[1].Label, points[2].Label)
	}
}

func TestMonthlyTrend_InvalidMonths(t *testing.T) {
	if points := MonthlyTrend(nil, day(2026, time.March, 15), 0); len(points) != 0 {
		t.Errorf("expected empty trend for months=0, got %d points", len(points))
	}
}

func TestWeekdayAverages(t *testing.T) {
	// 2026-03-01 is a Sunday.
	sunday := day(2026, time.March, 1)
	monday := day(2026, time.March, 2)
	nextSunday := day(2026, time.March, 8)

	expenses := []models.Expense{
		expense("10", models.CategoryFood, sunday),
		expense("30", models.CategoryFood, nextSunday),
		expense("100", models.CategoryBills, monday),
	}

	s := WeekdayAverages(expenses)
	if len(s.Averages) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(s.Averages))
	}
	if !s.Averages[0].Average.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected Sunday average 20, got %s", s.Averages[0].Average)
	}
	if !s.Averages[1].Average.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected Monday average 100, got %s", s.Averages[1].Average)
	}
	for d := 2; d < 7; d++ {
		if !s.Averages[d].Average.IsZero() {
			t.Errorf("weekday %d: expected zero average, got %s", d, s.Averages[d].Average)
		}
	}
	if s.Busiest == nil || *s.Busiest != 1 {
		t.Errorf("expected busiest weekday Monday (1), got %v", s.Busiest)
	}
}

func TestWeekdayAverages_Empty(t *testing.T) {
	s := WeekdayAverages(nil)
	if len(s.Averages) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(s.Averages))
	}
	for _, a := range s.Averages {
		if !a.Average.IsZero() {
			t.Errorf("weekday %d: expected zero average, got %s", a.Weekday, a.Average)
		}
	}
	if s.Busiest != nil {
		t.Errorf("expected no busiest weekday, got %d", *s.Busiest)
	}
}

func TestGoalPercent(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    int
	}{
		{"half", "50", "100", 50},
		{"rounds_half_up", "1", "3", 33},
		{"rounds_up_at_midpoint", "1", "8", 13}, // 12.5 -> 13
		{"complete", "100", "100", 100},
		{"over_target", "150", "100", 150},
		{"zero_target", "10", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.Goal{
				CurrentAmount: decimal.RequireFromString(tt.current),
				TargetAmount:  decimal.RequireFromString(tt.target),
			}
			if got := GoalPercent(g); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestOverallGoalPercent(t *testing.T) {
	goals := []models.Goal{
		{CurrentAmount: decimal.NewFromInt(50), TargetAmount: decimal.NewFromInt(100)},
		{CurrentAmount: decimal.NewFromInt(100), TargetAmount: decimal.NewFromInt(100)},
	}
	if got := OverallGoalPercent(goals); got != 75 {
		t.Errorf("expected 75, got %d", got)
	}
}

func TestOverallGoalPercent_Empty(t *testing.T) {
	if got := OverallGoalPercent(nil); got != 0 {
		t.Errorf("expected 0 for no goals, got %d", got)
	}
}
