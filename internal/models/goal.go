package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the progress status of a savings goal.
type GoalStatus string

const (
	GoalStatusInProgress     GoalStatus = "in_progress"
	GoalStatusOnTrack        GoalStatus = "on_track"
	GoalStatusBehindSchedule GoalStatus = "behind_schedule"
	GoalStatusCompleted      GoalStatus = "completed"
)

// IsValid reports whether s is a member of the closed status set.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusInProgress, GoalStatusOnTrack, GoalStatusBehindSchedule, GoalStatusCompleted:
		return true
	}
	return false
}

// Goal represents a user-owned savings target with progress tracking.
// Status is only recomputed when funds are added: reaching the target
// flips it to completed, anything less keeps the prior status.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	Status        GoalStatus      `gorm:"not null;default:'in_progress'" json:"status"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}
