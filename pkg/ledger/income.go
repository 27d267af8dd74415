package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CreateIncome declares an income to be expanded into one or more
// entries.
type CreateIncome struct {
	BudgetID      uint64
	BudgetMonthID uint64 // anchor month
	CategoryID    uint64
	IncomeTypeID  *uint64
	Description   string
	Note          string
	Amount        decimal.Decimal
	Received      bool
	Recurrence    types.RecurrenceKind
	Installments  int // only for RecurrenceInstallment
}

// CreateIncomeEntry expands a single income declaration into dated
// entries across the budget's months.
//
// With RecurrenceInstallment the declared amount is divided evenly
// across the installments, each share independently rounded to two
// decimals; for counts that do not divide evenly the sum of the shares
// may drift from the declared total by a few cents, and the drift is
// accepted rather than reconciled onto the last installment. Every
// installment entry has its description suffixed with "(i/n)" and
// records its position and count. NONE and FIXED use the declared
// amount unmodified for every entry.
//
// The received flag is honored only on the NONE path; expanded entries
// always start out not received.
//
// Returns the created entries in target-month order.
func (l *Ledger) CreateIncomeEntry(create CreateIncome) ([]models.IncomeEntry, error) {
	created := make([]models.IncomeEntry, 0)

	err := l.update(func(s *models.Snapshot) error {
		budget := s.Budget(create.BudgetID)
		if budget == nil {
			return ErrBudgetNotFound
		}

		anchor := s.BudgetMonth(create.BudgetMonthID)
		if anchor == nil {
			return ErrBudgetMonthNotFound
		}
		if anchor.BudgetID != budget.ID {
			return fmt.Errorf("%w: month %d, budget %d", ErrMonthNotInBudget, anchor.ID, budget.ID)
		}

		category := s.Category(create.CategoryID)
		if category == nil {
			return ErrCategoryNotFound
		}
		if category.Kind != types.CategoryIncome {
			return fmt.Errorf("%w: %q is %s", ErrCategoryWrongKind, category.Name, category.Kind)
		}
		if !category.Active {
			return fmt.Errorf("%w: %q", ErrCategoryInactive, category.Name)
		}

		if create.IncomeTypeID != nil {
			incomeType := s.IncomeType(*create.IncomeTypeID)
			if incomeType == nil {
				return ErrIncomeTypeNotFound
			}
			if !incomeType.Active {
				return fmt.Errorf("%w: %q", ErrIncomeTypeInactive, incomeType.Description)
			}
		}

		if !create.Amount.IsPositive() {
			return fmt.Errorf("%w: %s", ErrAmountNotPositive, create.Amount)
		}

		if !create.Recurrence.ValidForIncome() {
			return fmt.Errorf("%w: %q", ErrRecurrenceInvalid, create.Recurrence)
		}
		if create.Recurrence == types.RecurrenceInstallment && create.Installments < 1 {
			return fmt.Errorf("%w: %d", ErrInstallmentCount, create.Installments)
		}

		months, err := targetMonths(s, budget.ID, *anchor, create.Recurrence, create.Installments)
		if err != nil {
			return err
		}

		amount := create.Amount
		if create.Recurrence == types.RecurrenceInstallment {
			amount = create.Amount.DivRound(decimal.NewFromInt(int64(create.Installments)), 2)
		}

		description := strings.TrimSpace(create.Description)
		for i, month := range months {
			entry := models.IncomeEntry{
				Model:         models.Model{ID: l.store.NextID(models.KindIncomeEntry)},
				BudgetID:      budget.ID,
				BudgetMonthID: month.ID,
				CategoryID:    category.ID,
				IncomeTypeID:  create.IncomeTypeID,
				Description:   description,
				Note:          strings.TrimSpace(create.Note),
				Amount:        amount,
				Received:      create.Recurrence == types.RecurrenceNone && create.Received,
				Recurrence:    create.Recurrence,
			}

			if create.Recurrence == types.RecurrenceInstallment {
				index, count := i+1, create.Installments
				entry.Description = fmt.Sprintf("%s (%d/%d)", description, index, count)
				entry.InstallmentIndex = &index
				entry.InstallmentCount = &count
			}

			s.IncomeEntries = append(s.IncomeEntries, entry)
			created = append(created, entry)
		}

		log.Debug().Uint64("budget", budget.ID).Str("recurrence", string(create.Recurrence)).
			Int("entries", len(created)).Msg("income declared")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// SetIncomeReceived flips the received flag of an income entry.
func (l *Ledger) SetIncomeReceived(id uint64, received bool) (models.IncomeEntry, error) {
	var updated models.IncomeEntry

	err := l.update(func(s *models.Snapshot) error {
		entry := s.IncomeEntry(id)
		if entry == nil {
			return ErrIncomeEntryNotFound
		}

		entry.Received = received
		updated = *entry
		return nil
	})

	return updated, err
}

// IncomeList is the income ledger of one budget month with its sums.
type IncomeList struct {
	Entries  []models.IncomeEntry `json:"entries"`
	Declared decimal.Decimal      `json:"declared"`
	Received decimal.Decimal      `json:"received"`
}

// IncomeByMonth returns the income entries of a budget month together
// with the sum of declared amounts and the sum of received amounts.
func (l *Ledger) IncomeByMonth(budgetID uint64, month types.MonthNumber) (IncomeList, error) {
	list := IncomeList{Entries: make([]models.IncomeEntry, 0)}

	err := l.view(func(s *models.Snapshot) error {
		if s.Budget(budgetID) == nil {
			return ErrBudgetNotFound
		}

		budgetMonth := s.MonthOf(budgetID, month)
		if budgetMonth == nil {
			return fmt.Errorf("%w: %s in budget %d", ErrBudgetMonthNotFound, month, budgetID)
		}

		list.Entries = s.IncomeByMonth(budgetMonth.ID)
		for _, entry := range list.Entries {
			list.Declared = list.Declared.Add(entry.Amount)
			if entry.Received {
				list.Received = list.Received.Add(entry.Amount)
			}
		}
		return nil
	})

	return list, err
}
