package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
)

// CreateCategory creates an active category for the given kind. The name
// must be unique within the kind; comparison ignores case and
// surrounding whitespace.
func (l *Ledger) CreateCategory(name string, kind types.CategoryKind) (models.Category, error) {
	var created models.Category

	err := l.update(func(s *models.Snapshot) error {
		if !kind.Valid() {
			return fmt.Errorf("%w: %q", ErrCategoryKindInvalid, kind)
		}

		for _, other := range s.Categories {
			if other.Kind == kind && models.SameName(other.Name, name) {
				return fmt.Errorf("%w: %q", ErrCategoryNameTaken, other.Name)
			}
		}

		created = models.Category{
			Model:  models.Model{ID: l.store.NextID(models.KindCategory)},
			Name:   strings.TrimSpace(name),
			Kind:   kind,
			Active: true,
		}
		s.Categories = append(s.Categories, created)
		return nil
	})

	return created, err
}

// GetCategory returns a category by ID.
func (l *Ledger) GetCategory(id uint64) (models.Category, error) {
	var category models.Category

	err := l.view(func(s *models.Snapshot) error {
		found := s.Category(id)
		if found == nil {
			return ErrCategoryNotFound
		}
		category = *found
		return nil
	})

	return category, err
}

// Categories returns all categories, active and inactive.
func (l *Ledger) Categories() ([]models.Category, error) {
	categories := make([]models.Category, 0)

	err := l.view(func(s *models.Snapshot) error {
		categories = append(categories, s.Categories...)
		return nil
	})

	return categories, err
}

// CategoryUpdate carries the mutable fields of a category. Nil fields
// are left unchanged.
type CategoryUpdate struct {
	Name   *string
	Active *bool
}

// UpdateCategory renames a category or flips its active flag.
//
// Deactivation fails while any ledger entry referencing the category
// belongs to an active budget. This guards new lançamentos only:
// historical entries stay valid after the deactivation.
func (l *Ledger) UpdateCategory(id uint64, update CategoryUpdate) (models.Category, error) {
	var updated models.Category

	err := l.update(func(s *models.Snapshot) error {
		category := s.Category(id)
		if category == nil {
			return ErrCategoryNotFound
		}

		if update.Name != nil {
			for _, other := range s.Categories {
				if other.ID != id && other.Kind == category.Kind && models.SameName(other.Name, *update.Name) {
					return fmt.Errorf("%w: %q", ErrCategoryNameTaken, other.Name)
				}
			}
		}

		if update.Active != nil && !*update.Active && category.Active {
			if err := categoryReferenced(s, id); err != nil {
				return err
			}
		}

		if update.Name != nil {
			category.Name = strings.TrimSpace(*update.Name)
		}
		if update.Active != nil {
			category.Active = *update.Active
		}

		updated = *category
		return nil
	})

	return updated, err
}

// categoryReferenced fails when any income or expense entry referencing
// the category belongs to a budget whose active flag is set.
func categoryReferenced(s *models.Snapshot, categoryID uint64) error {
	activeBudget := func(budgetID uint64) bool {
		budget := s.Budget(budgetID)
		return budget != nil && budget.Active
	}

	for _, entry := range s.IncomeEntries {
		if entry.CategoryID == categoryID && activeBudget(entry.BudgetID) {
			return fmt.Errorf("%w: income entry %d", ErrCategoryInUse, entry.ID)
		}
	}
	for _, entry := range s.ExpenseEntries {
		if entry.CategoryID == categoryID && activeBudget(entry.BudgetID) {
			return fmt.Errorf("%w: expense entry %d", ErrCategoryInUse, entry.ID)
		}
	}
	return nil
}
