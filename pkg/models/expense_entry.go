package models

import (
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// ExpenseEntry is one dated expense lançamento within a budget month.
//
// Unlike income, an installment expense repeats the declared amount in
// every created entry; the amount is never divided.
type ExpenseEntry struct {
	Model
	BudgetID            uint64               `json:"budgetId"`
	BudgetMonthID       uint64               `json:"budgetMonthId"`
	CategoryID          uint64               `json:"categoryId"`
	PredefinedExpenseID *uint64              `json:"predefinedExpenseId,omitempty"`
	Description         string               `json:"description"`
	Note                string               `json:"note,omitempty"`
	Amount              decimal.Decimal      `json:"amount"`
	Paid                bool                 `json:"paid"`
	Recurrence          types.RecurrenceKind `json:"recurrence"`
	InstallmentCount    *int                 `json:"installmentCount,omitempty"`
}

// ExpenseEntry returns the expense entry with the given ID, or nil.
func (s *Snapshot) ExpenseEntry(id uint64) *ExpenseEntry {
	for i := range s.ExpenseEntries {
		if s.ExpenseEntries[i].ID == id {
			return &s.ExpenseEntries[i]
		}
	}
	return nil
}

// ExpensesByMonth returns all expense entries anchored to a budget month.
func (s *Snapshot) ExpensesByMonth(budgetMonthID uint64) []ExpenseEntry {
	entries := make([]ExpenseEntry, 0)
	for _, e := range s.ExpenseEntries {
		if e.BudgetMonthID == budgetMonthID {
			entries = append(entries, e)
		}
	}
	return entries
}
