package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
)

// CreateIncomeType creates an active income type. The description must
// be unique; comparison ignores case and surrounding whitespace.
func (l *Ledger) CreateIncomeType(description string, recurring bool) (models.IncomeType, error) {
	var created models.IncomeType

	err := l.update(func(s *models.Snapshot) error {
		for _, other := range s.IncomeTypes {
			if models.SameName(other.Description, description) {
				return fmt.Errorf("%w: %q", ErrIncomeTypeDescriptionTaken, other.Description)
			}
		}

		created = models.IncomeType{
			Model:       models.Model{ID: l.store.NextID(models.KindIncomeType)},
			Description: strings.TrimSpace(description),
			Recurring:   recurring,
			Active:      true,
		}
		s.IncomeTypes = append(s.IncomeTypes, created)
		return nil
	})

	return created, err
}

// GetIncomeType returns an income type by ID.
func (l *Ledger) GetIncomeType(id uint64) (models.IncomeType, error) {
	var incomeType models.IncomeType

	err := l.view(func(s *models.Snapshot) error {
		found := s.IncomeType(id)
		if found == nil {
			return ErrIncomeTypeNotFound
		}
		incomeType = *found
		return nil
	})

	return incomeType, err
}

// IncomeTypes returns all income types, active and inactive.
func (l *Ledger) IncomeTypes() ([]models.IncomeType, error) {
	incomeTypes := make([]models.IncomeType, 0)

	err := l.view(func(s *models.Snapshot) error {
		incomeTypes = append(incomeTypes, s.IncomeTypes...)
		return nil
	})

	return incomeTypes, err
}

// IncomeTypeUpdate carries the mutable fields of an income type. Nil
// fields are left unchanged.
type IncomeTypeUpdate struct {
	Description *string
	Recurring   *bool
	Active      *bool
}

// UpdateIncomeType updates an income type. Deactivation fails while any
// income entry referencing the type belongs to an active budget.
func (l *Ledger) UpdateIncomeType(id uint64, update IncomeTypeUpdate) (models.IncomeType, error) {
	var updated models.IncomeType

	err := l.update(func(s *models.Snapshot) error {
		incomeType := s.IncomeType(id)
		if incomeType == nil {
			return ErrIncomeTypeNotFound
		}

		if update.Description != nil {
			for _, other := range s.IncomeTypes {
				if other.ID != id && models.SameName(other.Description, *update.Description) {
					return fmt.Errorf("%w: %q", ErrIncomeTypeDescriptionTaken, other.Description)
				}
			}
		}

		if update.Active != nil && !*update.Active && incomeType.Active {
			for _, entry := range s.IncomeEntries {
				if entry.IncomeTypeID == nil || *entry.IncomeTypeID != id {
					continue
				}
				budget := s.Budget(entry.BudgetID)
				if budget != nil && budget.Active {
					return fmt.Errorf("%w: income entry %d", ErrIncomeTypeInUse, entry.ID)
				}
			}
		}

		if update.Description != nil {
			incomeType.Description = strings.TrimSpace(*update.Description)
		}
		if update.Recurring != nil {
			incomeType.Recurring = *update.Recurring
		}
		if update.Active != nil {
			incomeType.Active = *update.Active
		}

		updated = *incomeType
		return nil
	})

	return updated, err
}
