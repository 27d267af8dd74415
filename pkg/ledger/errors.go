package ledger

import "errors"

// Every failing condition is a precondition violation that aborts the
// whole operation before anything is persisted. The sentinels below are
// grouped into kinds so that a transport layer can map them to distinct
// status codes; the engine itself treats them all the same way.
var (
	ErrBudgetNotFound            = errors.New("budget does not exist")
	ErrBudgetMonthNotFound       = errors.New("budget month does not exist")
	ErrCategoryNotFound          = errors.New("category does not exist")
	ErrIncomeTypeNotFound        = errors.New("income type does not exist")
	ErrPredefinedExpenseNotFound = errors.New("predefined expense does not exist")
	ErrIncomeEntryNotFound       = errors.New("income entry does not exist")
	ErrExpenseEntryNotFound      = errors.New("expense entry does not exist")
	ErrCardNotFound              = errors.New("card does not exist")
	ErrCardChargeNotFound        = errors.New("card charge does not exist")

	ErrNoMonths            = errors.New("a budget needs at least one month")
	ErrMonthOutOfRange     = errors.New("months must be between 1 and 12")
	ErrMonthDuplicated     = errors.New("months cannot repeat within a budget")
	ErrMonthNotInBudget    = errors.New("the month does not belong to the budget")
	ErrAmountNotPositive   = errors.New("the amount must be positive")
	ErrRecurrenceInvalid   = errors.New("the recurrence kind is not valid for this ledger")
	ErrChargeKindInvalid   = errors.New("the charge kind is not valid")
	ErrCategoryKindInvalid = errors.New("the category kind is not valid")
	ErrCategoryWrongKind   = errors.New("the category has the wrong kind for this entry")
	ErrInstallmentCount    = errors.New("the installment count must be at least 1")
	ErrInstallmentsDontFit = errors.New("not enough months remain in the budget for the requested installments")
	ErrCategoryInactive    = errors.New("the category is not active")
	ErrIncomeTypeInactive  = errors.New("the income type is not active")
	ErrPredefinedInactive  = errors.New("the predefined expense is not active")
	ErrCardInactive        = errors.New("the card is not active")

	ErrMonthTaken                 = errors.New("another budget for the same year already contains this month")
	ErrCategoryNameTaken          = errors.New("a category with this name already exists for this kind")
	ErrIncomeTypeDescriptionTaken = errors.New("an income type with this description already exists")
	ErrCategoryInUse              = errors.New("the category is referenced by entries of an active budget")
	ErrIncomeTypeInUse            = errors.New("the income type is referenced by entries of an active budget")
)

// Kind classifies a failure for transport mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindPrecondition
)

var kinds = map[error]Kind{
	ErrBudgetNotFound:            KindNotFound,
	ErrBudgetMonthNotFound:       KindNotFound,
	ErrCategoryNotFound:          KindNotFound,
	ErrIncomeTypeNotFound:        KindNotFound,
	ErrPredefinedExpenseNotFound: KindNotFound,
	ErrIncomeEntryNotFound:       KindNotFound,
	ErrExpenseEntryNotFound:      KindNotFound,
	ErrCardNotFound:              KindNotFound,
	ErrCardChargeNotFound:        KindNotFound,

	ErrNoMonths:            KindValidation,
	ErrMonthOutOfRange:     KindValidation,
	ErrMonthDuplicated:     KindValidation,
	ErrMonthNotInBudget:    KindValidation,
	ErrAmountNotPositive:   KindValidation,
	ErrRecurrenceInvalid:   KindValidation,
	ErrChargeKindInvalid:   KindValidation,
	ErrCategoryKindInvalid: KindValidation,
	ErrCategoryWrongKind:   KindValidation,
	ErrInstallmentCount:    KindValidation,
	ErrInstallmentsDontFit: KindValidation,

	ErrMonthTaken:                 KindConflict,
	ErrCategoryNameTaken:          KindConflict,
	ErrIncomeTypeDescriptionTaken: KindConflict,

	ErrCategoryInactive:   KindPrecondition,
	ErrIncomeTypeInactive: KindPrecondition,
	ErrPredefinedInactive: KindPrecondition,
	ErrCardInactive:       KindPrecondition,
	ErrCategoryInUse:      KindPrecondition,
	ErrIncomeTypeInUse:    KindPrecondition,
}

// Classify returns the Kind of an error returned by a ledger operation.
func Classify(err error) Kind {
	for sentinel, kind := range kinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
