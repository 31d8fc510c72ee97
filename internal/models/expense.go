package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense.
// Categories are a fixed closed set.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryHealth        ExpenseCategory = "Health"
	CategoryBills         ExpenseCategory = "Bills"
	CategoryOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid category, in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryBills,
	CategoryOther,
}

// IsValid reports whether c is a member of the closed category set.
func (c ExpenseCategory) IsValid() bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Expense represents a single dated, categorized, user-owned monetary
// outflow record. Amount is stored as an exact decimal column so sums
// never drift the way binary floats do.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category    ExpenseCategory `gorm:"not null;index" json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"` // day granularity, midnight UTC

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}
