package ledger

import (
	"fmt"
	"time"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/rs/zerolog/log"
)

// BudgetDetail is a budget together with its months, ordered ascending
// by month number.
type BudgetDetail struct {
	models.Budget
	Months []models.BudgetMonth `json:"months"`
}

// CreateBudget creates a budget for a year with the given set of months.
//
// The months must be distinct values between 1 and 12, and no requested
// (year, month) pair may already belong to another budget. The budget
// months are created in the given order, each with a fresh identifier,
// and are immutable afterwards.
func (l *Ledger) CreateBudget(year int, months []types.MonthNumber) (BudgetDetail, error) {
	var detail BudgetDetail

	err := l.update(func(s *models.Snapshot) error {
		if len(months) == 0 {
			return ErrNoMonths
		}

		seen := make(map[types.MonthNumber]bool, len(months))
		for _, month := range months {
			if !month.Valid() {
				return fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
			}
			if seen[month] {
				return fmt.Errorf("%w: %s", ErrMonthDuplicated, month)
			}
			seen[month] = true

			for _, other := range s.Budgets {
				if other.Year == year && s.MonthOf(other.ID, month) != nil {
					return fmt.Errorf("%w: %d-%s", ErrMonthTaken, year, month)
				}
			}
		}

		budget := models.Budget{
			Model:     models.Model{ID: l.store.NextID(models.KindBudget)},
			Year:      year,
			Active:    true,
			CreatedAt: time.Now().In(time.UTC),
		}
		s.Budgets = append(s.Budgets, budget)

		detail.Budget = budget
		detail.Months = make([]models.BudgetMonth, 0, len(months))
		for _, month := range months {
			budgetMonth := models.BudgetMonth{
				Model:    models.Model{ID: l.store.NextID(models.KindBudgetMonth)},
				BudgetID: budget.ID,
				Month:    month,
			}
			s.BudgetMonths = append(s.BudgetMonths, budgetMonth)
			detail.Months = append(detail.Months, budgetMonth)
		}

		log.Debug().Uint64("id", budget.ID).Int("year", year).Int("months", len(months)).Msg("budget created")
		return nil
	})

	return detail, err
}

// GetBudget returns a budget and its months.
func (l *Ledger) GetBudget(id uint64) (BudgetDetail, error) {
	var detail BudgetDetail

	err := l.view(func(s *models.Snapshot) error {
		budget := s.Budget(id)
		if budget == nil {
			return ErrBudgetNotFound
		}

		detail.Budget = *budget
		detail.Months = s.MonthsOf(id)
		return nil
	})

	return detail, err
}

// Budgets returns all budgets with their months.
func (l *Ledger) Budgets() ([]BudgetDetail, error) {
	details := make([]BudgetDetail, 0)

	err := l.view(func(s *models.Snapshot) error {
		for _, budget := range s.Budgets {
			details = append(details, BudgetDetail{Budget: budget, Months: s.MonthsOf(budget.ID)})
		}
		return nil
	})

	return details, err
}

// SetBudgetActive flips the active flag of a budget. The months and the
// entries of the budget are untouched; an inactive budget only releases
// the deactivation guards on the reference catalog.
func (l *Ledger) SetBudgetActive(id uint64, active bool) (models.Budget, error) {
	var updated models.Budget

	err := l.update(func(s *models.Snapshot) error {
		budget := s.Budget(id)
		if budget == nil {
			return ErrBudgetNotFound
		}

		budget.Active = active
		updated = *budget
		return nil
	})

	return updated, err
}
