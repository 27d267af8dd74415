package models

// SchemaVersion is the version of the persisted document layout.
const SchemaVersion = 1

// Entity kind names, used as keys for the per-kind identifier counters.
const (
	KindBudget            = "budget"
	KindBudgetMonth       = "budgetMonth"
	KindCategory          = "category"
	KindPredefinedExpense = "predefinedExpense"
	KindIncomeType        = "incomeType"
	KindIncomeEntry       = "incomeEntry"
	KindExpenseEntry      = "expenseEntry"
	KindCard              = "card"
	KindCardMonth         = "cardMonth"
	KindCardCharge        = "cardCharge"
)

// Metadata is the bookkeeping block of the persisted document.
type Metadata struct {
	SchemaVersion int               `json:"schemaVersion"`
	LastIDs       map[string]uint64 `json:"lastIds"`
}

// Snapshot is the entire ledger state as one document.
//
// The store owns the snapshot; operations borrow it for the duration of
// one load-validate-mutate-save cycle. Entities are never deleted from
// the collections, their lifecycle ends with an inactive flag.
type Snapshot struct {
	Metadata           Metadata            `json:"metadata"`
	Budgets            []Budget            `json:"budgets"`
	BudgetMonths       []BudgetMonth       `json:"budgetMonths"`
	Categories         []Category          `json:"categories"`
	PredefinedExpenses []PredefinedExpense `json:"predefinedExpenses"`
	IncomeTypes        []IncomeType        `json:"incomeTypes"`
	IncomeEntries      []IncomeEntry       `json:"incomeEntries"`
	ExpenseEntries     []ExpenseEntry      `json:"expenseEntries"`
	Cards              []Card              `json:"cards"`
	CardMonths         []CardMonth         `json:"cardMonths"`
	CardCharges        []CardCharge        `json:"cardCharges"`
}

// Empty returns the canonical empty snapshot: all counters zero, all
// collections present and empty.
func Empty() *Snapshot {
	s := &Snapshot{}
	s.Normalize()
	return s
}

// Normalize fills in any missing collection with an empty one and any
// missing metadata with the canonical default. Documents written by
// other tools may omit empty collections; the engine never works on a
// snapshot with nil collections.
func (s *Snapshot) Normalize() {
	if s.Metadata.SchemaVersion == 0 {
		s.Metadata.SchemaVersion = SchemaVersion
	}
	if s.Metadata.LastIDs == nil {
		s.Metadata.LastIDs = make(map[string]uint64)
	}

	if s.Budgets == nil {
		s.Budgets = make([]Budget, 0)
	}
	if s.BudgetMonths == nil {
		s.BudgetMonths = make([]BudgetMonth, 0)
	}
	if s.Categories == nil {
		s.Categories = make([]Category, 0)
	}
	if s.PredefinedExpenses == nil {
		s.PredefinedExpenses = make([]PredefinedExpense, 0)
	}
	if s.IncomeTypes == nil {
		s.IncomeTypes = make([]IncomeType, 0)
	}
	if s.IncomeEntries == nil {
		s.IncomeEntries = make([]IncomeEntry, 0)
	}
	if s.ExpenseEntries == nil {
		s.ExpenseEntries = make([]ExpenseEntry, 0)
	}
	if s.Cards == nil {
		s.Cards = make([]Card, 0)
	}
	if s.CardMonths == nil {
		s.CardMonths = make([]CardMonth, 0)
	}
	if s.CardCharges == nil {
		s.CardCharges = make([]CardCharge, 0)
	}
}
