package models

import (
	"sort"
	"time"

	"github.com/orcamento-familiar/backend/pkg/types"
)

// Budget represents a yearly planning period ("orçamento").
//
// A budget is the highest level of organization in the ledger; every
// income and expense entry anchors to one of its months.
type Budget struct {
	Model
	Year      int       `json:"year"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// BudgetMonth is one calendar month within a specific budget.
//
// The months of a budget are assigned at creation and never change for
// the budget's lifetime.
type BudgetMonth struct {
	Model
	BudgetID uint64            `json:"budgetId"`
	Month    types.MonthNumber `json:"month"`
}

// Budget returns the budget with the given ID, or nil.
func (s *Snapshot) Budget(id uint64) *Budget {
	for i := range s.Budgets {
		if s.Budgets[i].ID == id {
			return &s.Budgets[i]
		}
	}
	return nil
}

// BudgetMonth returns the budget month with the given ID, or nil.
func (s *Snapshot) BudgetMonth(id uint64) *BudgetMonth {
	for i := range s.BudgetMonths {
		if s.BudgetMonths[i].ID == id {
			return &s.BudgetMonths[i]
		}
	}
	return nil
}

// MonthsOf returns the months of a budget ordered ascending by month number.
func (s *Snapshot) MonthsOf(budgetID uint64) []BudgetMonth {
	var months []BudgetMonth
	for _, m := range s.BudgetMonths {
		if m.BudgetID == budgetID {
			months = append(months, m)
		}
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// MonthOf returns the month of a budget with the given month number, or nil.
func (s *Snapshot) MonthOf(budgetID uint64, month types.MonthNumber) *BudgetMonth {
	for i := range s.BudgetMonths {
		if s.BudgetMonths[i].BudgetID == budgetID && s.BudgetMonths[i].Month == month {
			return &s.BudgetMonths[i]
		}
	}
	return nil
}
