package ledger

import (
	"fmt"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
)

// targetMonths computes which budget months a declaration expands into.
//
//   - a single-month kind uses just the anchor month
//   - FIXED uses every month of the budget, ordered ascending
//   - INSTALLMENT takes `installments` consecutive months starting at the
//     anchor's position within the budget's months ordered ascending, and
//     fails when fewer months remain after the anchor than requested
func targetMonths(s *models.Snapshot, budgetID uint64, anchor models.BudgetMonth, kind types.RecurrenceKind, installments int) ([]models.BudgetMonth, error) {
	if kind.Single() {
		return []models.BudgetMonth{anchor}, nil
	}

	months := s.MonthsOf(budgetID)
	if kind == types.RecurrenceFixed {
		return months, nil
	}

	// INSTALLMENT
	start := 0
	for i, month := range months {
		if month.ID == anchor.ID {
			start = i
			break
		}
	}

	if start+installments > len(months) {
		return nil, fmt.Errorf("%w: %d requested, %d available from month %s",
			ErrInstallmentsDontFit, installments, len(months)-start, anchor.Month)
	}

	return months[start : start+installments], nil
}
