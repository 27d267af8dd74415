package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CreateExpense declares an expense to be expanded into one or more
// entries.
type CreateExpense struct {
	BudgetID      uint64
	BudgetMonthID uint64 // anchor month
	CategoryID    uint64
	Description   string
	Note          string
	Amount        decimal.Decimal
	Paid          bool
	Recurrence    types.RecurrenceKind
	Installments  int // only for RecurrenceInstallment
}

// CreateExpenseEntry expands a single expense declaration into dated
// entries across the budget's months.
//
// The target months are computed exactly like the income ledger's, but
// the amount handling is intentionally different: an installment expense
// means "this same amount recurs for N consecutive months", so the
// declared amount is repeated unmodified in every entry and never
// divided the way income installments are.
//
// The paid flag is honored only on the ONE_OFF path; expanded entries
// always start out unpaid.
func (l *Ledger) CreateExpenseEntry(create CreateExpense) ([]models.ExpenseEntry, error) {
	return l.createExpense(create, nil)
}

// CreateExpenseFromPredefined creates expense entries from a predefined
// expense template. The entries inherit the template's category and
// description; validation and expansion are otherwise identical to
// CreateExpenseEntry.
func (l *Ledger) CreateExpenseFromPredefined(predefinedID uint64, create CreateExpense) ([]models.ExpenseEntry, error) {
	return l.createExpense(create, &predefinedID)
}

func (l *Ledger) createExpense(create CreateExpense, predefinedID *uint64) ([]models.ExpenseEntry, error) {
	created := make([]models.ExpenseEntry, 0)

	err := l.update(func(s *models.Snapshot) error {
		if predefinedID != nil {
			predefined := s.PredefinedExpense(*predefinedID)
			if predefined == nil {
				return ErrPredefinedExpenseNotFound
			}
			if !predefined.Active {
				return fmt.Errorf("%w: %q", ErrPredefinedInactive, predefined.Description)
			}

			create.CategoryID = predefined.CategoryID
			create.Description = predefined.Description
		}

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
		if category.Kind != types.CategoryExpense {
			return fmt.Errorf("%w: %q is %s", ErrCategoryWrongKind, category.Name, category.Kind)
		}
		if !category.Active {
			return fmt.Errorf("%w: %q", ErrCategoryInactive, category.Name)
		}

		if !create.Amount.IsPositive() {
			return fmt.Errorf("%w: %s", ErrAmountNotPositive, create.Amount)
		}

		if !create.Recurrence.ValidForExpense() {
			return fmt.Errorf("%w: %q", ErrRecurrenceInvalid, create.Recurrence)
		}
		if create.Recurrence == types.RecurrenceInstallment && create.Installments < 1 {
			return fmt.Errorf("%w: %d", ErrInstallmentCount, create.Installments)
		}

		months, err := targetMonths(s, budget.ID, *anchor, create.Recurrence, create.Installments)
		if err != nil {
			return err
		}

		description := strings.TrimSpace(create.Description)
		for _, month := range months {
			entry := models.ExpenseEntry{
				Model:               models.Model{ID: l.store.NextID(models.KindExpenseEntry)},
				BudgetID:            budget.ID,
				BudgetMonthID:       month.ID,
				CategoryID:          category.ID,
				PredefinedExpenseID: predefinedID,
				Description:         description,
				Note:                strings.TrimSpace(create.Note),
				Amount:              create.Amount,
				Paid:                create.Recurrence == types.RecurrenceOneOff && create.Paid,
				Recurrence:          create.Recurrence,
			}

			if create.Recurrence == types.RecurrenceInstallment {
				count := create.Installments
				entry.InstallmentCount = &count
			}

			s.ExpenseEntries = append(s.ExpenseEntries, entry)
			created = append(created, entry)
		}

		log.Debug().Uint64("budget", budget.ID).Str("recurrence", string(create.Recurrence)).
			Int("entries", len(created)).Msg("expense declared")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// SetExpensePaid flips the paid flag of an expense entry.
func (l *Ledger) SetExpensePaid(id uint64, paid bool) (models.ExpenseEntry, error) {
	var updated models.ExpenseEntry

	err := l.update(func(s *models.Snapshot) error {
		entry := s.ExpenseEntry(id)
		if entry == nil {
			return ErrExpenseEntryNotFound
		}

		entry.Paid = paid
		updated = *entry
		return nil
	})

	return updated, err
}

// ExpenseList is the expense ledger of one budget month with its sums.
type ExpenseList struct {
	Entries  []models.ExpenseEntry `json:"entries"`
	Declared decimal.Decimal       `json:"declared"`
	Paid     decimal.Decimal       `json:"paid"`
}

// ExpensesByMonth returns the expense entries of a budget month together
// with the sum of declared amounts and the sum of paid amounts.
func (l *Ledger) ExpensesByMonth(budgetID uint64, month types.MonthNumber) (ExpenseList, error) {
	list := ExpenseList{Entries: make([]models.ExpenseEntry, 0)}

	err := l.view(func(s *models.Snapshot) error {
		if s.Budget(budgetID) == nil {
			return ErrBudgetNotFound
		}

		budgetMonth := s.MonthOf(budgetID, month)
		if budgetMonth == nil {
			return fmt.Errorf("%w: %s in budget %d", ErrBudgetMonthNotFound, month, budgetID)
		}

		list.Entries = s.ExpensesByMonth(budgetMonth.ID)
		for _, entry := range list.Entries {
			list.Declared = list.Declared.Add(entry.Amount)
			if entry.Paid {
				list.Paid = list.Paid.Add(entry.Amount)
			}
		}
		return nil
	})

	return list, err
}
