package ledger

import (
	"fmt"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Flow is a declared amount next to the part of it that was realized
// (received for income, paid for expenses and card charges).
type Flow struct {
	Declared decimal.Decimal `json:"declared"`
	Realized decimal.Decimal `json:"realized"`
}

// MonthSummary is the aggregate view of one budget month.
//
// Balance is declared income minus declared expenses. Card totals are
// computed and reported next to it but never folded into the balance.
type MonthSummary struct {
	BudgetID uint64            `json:"budgetId"`
	Month    types.MonthNumber `json:"month"`
	Income   Flow              `json:"income"`
	Expense  Flow              `json:"expense"`
	Card     Flow              `json:"card"`
	Balance  decimal.Decimal   `json:"balance"`
}

// PeriodSummary sets an income total against an expense total over a
// whole budget.
type PeriodSummary struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Difference decimal.Decimal `json:"difference"`
}

// PeriodReport is the aggregate view of an entire budget: one row per
// month ordered ascending, a declared-vs-declared summary and a
// received-vs-paid summary.
type PeriodReport struct {
	Budget   models.Budget  `json:"budget"`
	Months   []MonthSummary `json:"months"`
	Declared PeriodSummary  `json:"declared"`
	Realized PeriodSummary  `json:"realized"`
}

// MonthSummary computes the aggregate view of one budget month.
func (l *Ledger) MonthSummary(budgetID uint64, month types.MonthNumber) (MonthSummary, error) {
	var summary MonthSummary

	err := l.view(func(s *models.Snapshot) error {
		if s.Budget(budgetID) == nil {
			return ErrBudgetNotFound
		}

		budgetMonth := s.MonthOf(budgetID, month)
		if budgetMonth == nil {
			return fmt.Errorf("%w: %s in budget %d", ErrBudgetMonthNotFound, month, budgetID)
		}

		summary = monthSummary(s, *budgetMonth)
		return nil
	})

	return summary, err
}

// PeriodReport computes the aggregate view of an entire budget.
func (l *Ledger) PeriodReport(budgetID uint64) (PeriodReport, error) {
	report := PeriodReport{Months: make([]MonthSummary, 0)}

	err := l.view(func(s *models.Snapshot) error {
		budget := s.Budget(budgetID)
		if budget == nil {
			return ErrBudgetNotFound
		}
		report.Budget = *budget

		for _, budgetMonth := range s.MonthsOf(budgetID) {
			summary := monthSummary(s, budgetMonth)
			report.Months = append(report.Months, summary)

			report.Declared.Income = report.Declared.Income.Add(summary.Income.Declared)
			report.Declared.Expense = report.Declared.Expense.Add(summary.Expense.Declared)
			report.Realized.Income = report.Realized.Income.Add(summary.Income.Realized)
			report.Realized.Expense = report.Realized.Expense.Add(summary.Expense.Realized)
		}

		report.Declared.Difference = report.Declared.Income.Sub(report.Declared.Expense)
		report.Realized.Difference = report.Realized.Income.Sub(report.Realized.Expense)
		return nil
	})

	return report, err
}

// monthSummary rolls the three ledgers up for one budget month. Pure
// read-side computation, no mutation.
func monthSummary(s *models.Snapshot, budgetMonth models.BudgetMonth) MonthSummary {
	summary := MonthSummary{
		BudgetID: budgetMonth.BudgetID,
		Month:    budgetMonth.Month,
	}

	for _, entry := range s.IncomeEntries {
		if entry.BudgetMonthID != budgetMonth.ID {
			continue
		}
		summary.Income.Declared = summary.Income.Declared.Add(entry.Amount)
		if entry.Received {
			summary.Income.Realized = summary.Income.Realized.Add(entry.Amount)
		}
	}

	for _, entry := range s.ExpenseEntries {
		if entry.BudgetMonthID != budgetMonth.ID {
			continue
		}
		summary.Expense.Declared = summary.Expense.Declared.Add(entry.Amount)
		if entry.Paid {
			summary.Expense.Realized = summary.Expense.Realized.Add(entry.Amount)
		}
	}

	// charges are reached through every card month bound to this budget
	// month, regardless of card
	for _, cardMonth := range s.CardMonths {
		if cardMonth.BudgetMonthID != budgetMonth.ID {
			continue
		}
		for _, charge := range s.ChargesOf(cardMonth.ID) {
			summary.Card.Declared = summary.Card.Declared.Add(charge.Amount)
			if charge.Paid {
				summary.Card.Realized = summary.Card.Realized.Add(charge.Amount)
			}
		}
	}

	summary.Balance = summary.Income.Declared.Sub(summary.Expense.Declared)
	return summary
}
