// Package types implements shared types for the budget ledger.
package types

// CategoryKind tells whether a category classifies income or expenses.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "INCOME"
	CategoryExpense CategoryKind = "EXPENSE"
)

// Valid reports whether the kind is one of the known category kinds.
func (k CategoryKind) Valid() bool {
	return k == CategoryIncome || k == CategoryExpense
}

// RecurrenceKind tells how a declared income or expense expands into
// ledger entries across the months of a budget.
//
// RecurrenceNone and RecurrenceOneOff both mean "just the anchor month";
// the income ledger uses the former, the expense ledger the latter.
type RecurrenceKind string

const (
	RecurrenceNone        RecurrenceKind = "NONE"
	RecurrenceOneOff      RecurrenceKind = "ONE_OFF"
	RecurrenceFixed       RecurrenceKind = "FIXED"
	RecurrenceInstallment RecurrenceKind = "INSTALLMENT"
)

// ValidForIncome reports whether the kind can be used for an income entry.
func (k RecurrenceKind) ValidForIncome() bool {
	return k == RecurrenceNone || k == RecurrenceFixed || k == RecurrenceInstallment
}

// ValidForExpense reports whether the kind can be used for an expense entry.
func (k RecurrenceKind) ValidForExpense() bool {
	return k == RecurrenceOneOff || k == RecurrenceFixed || k == RecurrenceInstallment
}

// Single reports whether the kind expands to exactly the anchor month.
func (k RecurrenceKind) Single() bool {
	return k == RecurrenceNone || k == RecurrenceOneOff
}

// ChargeKind classifies a charge on a card invoice.
type ChargeKind string

const (
	ChargeInstallment ChargeKind = "INSTALLMENT"
	ChargeRecurring   ChargeKind = "RECURRING"
	ChargeCurrent     ChargeKind = "CURRENT"
)

// Valid reports whether the kind is one of the known charge kinds.
func (k ChargeKind) Valid() bool {
	return k == ChargeInstallment || k == ChargeRecurring || k == ChargeCurrent
}
