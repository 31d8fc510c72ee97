package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/pagination"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal starting at zero progress.
func (s *goalService) CreateGoal(
	userID, name string,
	targetAmount decimal.Decimal,
	targetDate *time.Time,
) (*models.Goal, error) {
	if targetAmount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Target amount must be greater than zero")
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Status:        models.GoalStatusInProgress,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns a paginated list of the user's goals with an
// optional status filter.
func (s *goalService) GetUserGoals(
	userID string,
	page pagination.PageRequest,
	status *models.GoalStatus,
) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Order("created_at ASC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getOwnedGoal loads a goal by primary key, then checks ownership.
// A missing record is NOT_FOUND; an existing record owned by someone else
// is FORBIDDEN.
func (s *goalService) getOwnedGoal(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", goalID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &goal, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	return s.getOwnedGoal(userID, goalID)
}

// UpdateGoal updates an existing goal's fields. Nil fields are left
// unchanged. Status is only changed when explicitly provided; the system
// does not recompute it here.
func (s *goalService) UpdateGoal(
	userID, goalID string,
	name *string,
	targetAmount *decimal.Decimal,
	targetDate *time.Time,
	status *models.GoalStatus,
) (*models.Goal, error) {
	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if targetAmount != nil {
		if targetAmount.Sign() <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Target amount must be greater than zero")
		}
		updates["target_amount"] = *targetAmount
	}
	if targetDate != nil {
		updates["target_date"] = targetDate
	}
	if status != nil {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidGoalStatus
		}
		updates["status"] = *status
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// AddFunds adds a positive amount to a goal's current total. Reaching
// the target flips the status to completed; anything below the target
// leaves the prior status untouched.
func (s *goalService) AddFunds(userID, goalID string, amount decimal.Decimal) (*models.Goal, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}

	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	newAmount := goal.CurrentAmount.Add(amount)
	updates := map[string]interface{}{
		"current_amount": newAmount,
	}
	if newAmount.GreaterThanOrEqual(goal.TargetAmount) {
		updates["status"] = models.GoalStatusCompleted
	}

	if err := s.db.Model(goal).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
