package models

import (
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// IncomeEntry is one dated income lançamento within a budget month.
//
// Entries created by an installment run carry their 1-based position and
// the total count of the run.
type IncomeEntry struct {
	Model
	BudgetID         uint64               `json:"budgetId"`
	BudgetMonthID    uint64               `json:"budgetMonthId"`
	CategoryID       uint64               `json:"categoryId"`
	IncomeTypeID     *uint64              `json:"incomeTypeId,omitempty"`
	Description      string               `json:"description"`
	Note             string               `json:"note,omitempty"`
	Amount           decimal.Decimal      `json:"amount"`
	Received         bool                 `json:"received"`
	Recurrence       types.RecurrenceKind `json:"recurrence"`
	InstallmentCount *int                 `json:"installmentCount,omitempty"`
	InstallmentIndex *int                 `json:"installmentIndex,omitempty"`
}

// IncomeEntry returns the income entry with the given ID, or nil.
func (s *Snapshot) IncomeEntry(id uint64) *IncomeEntry {
	for i := range s.IncomeEntries {
		if s.IncomeEntries[i].ID == id {
			return &s.IncomeEntries[i]
		}
	}
	return nil
}

// IncomeByMonth returns all income entries anchored to a budget month.
func (s *Snapshot) IncomeByMonth(budgetMonthID uint64) []IncomeEntry {
	entries := make([]IncomeEntry, 0)
	for _, e := range s.IncomeEntries {
		if e.BudgetMonthID == budgetMonthID {
			entries = append(entries, e)
		}
	}
	return entries
}
