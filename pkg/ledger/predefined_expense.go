package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
)

// CreatePredefinedExpense creates an expense template. The referenced
// category must exist, be active and be an expense category at the time
// of the call; activity is checked, never cached.
func (l *Ledger) CreatePredefinedExpense(description string, categoryID uint64) (models.PredefinedExpense, error) {
	var created models.PredefinedExpense

	err := l.update(func(s *models.Snapshot) error {
		category := s.Category(categoryID)
		if category == nil {
			return ErrCategoryNotFound
		}
		if category.Kind != types.CategoryExpense {
			return fmt.Errorf("%w: %q is %s", ErrCategoryWrongKind, category.Name, category.Kind)
		}
		if !category.Active {
			return fmt.Errorf("%w: %q", ErrCategoryInactive, category.Name)
		}

		created = models.PredefinedExpense{
			Model:       models.Model{ID: l.store.NextID(models.KindPredefinedExpense)},
			Description: strings.TrimSpace(description),
			CategoryID:  categoryID,
			Active:      true,
		}
		s.PredefinedExpenses = append(s.PredefinedExpenses, created)
		return nil
	})

	return created, err
}

// GetPredefinedExpense returns a predefined expense by ID.
func (l *Ledger) GetPredefinedExpense(id uint64) (models.PredefinedExpense, error) {
	var predefined models.PredefinedExpense

	err := l.view(func(s *models.Snapshot) error {
		found := s.PredefinedExpense(id)
		if found == nil {
			return ErrPredefinedExpenseNotFound
		}
		predefined = *found
		return nil
	})

	return predefined, err
}

// PredefinedExpenses returns all predefined expenses, active and inactive.
func (l *Ledger) PredefinedExpenses() ([]models.PredefinedExpense, error) {
	predefined := make([]models.PredefinedExpense, 0)

	err := l.view(func(s *models.Snapshot) error {
		predefined = append(predefined, s.PredefinedExpenses...)
		return nil
	})

	return predefined, err
}

// PredefinedExpenseUpdate carries the mutable fields of a predefined
// expense. Nil fields are left unchanged.
type PredefinedExpenseUpdate struct {
	Description *string
	Active      *bool
}

// UpdatePredefinedExpense renames a predefined expense or flips its
// active flag.
func (l *Ledger) UpdatePredefinedExpense(id uint64, update PredefinedExpenseUpdate) (models.PredefinedExpense, error) {
	var updated models.PredefinedExpense

	err := l.update(func(s *models.Snapshot) error {
		predefined := s.PredefinedExpense(id)
		if predefined == nil {
			return ErrPredefinedExpenseNotFound
		}

		if update.Description != nil {
			predefined.Description = strings.TrimSpace(*update.Description)
		}
		if update.Active != nil {
			predefined.Active = *update.Active
		}

		updated = *predefined
		return nil
	})

	return updated, err
}
