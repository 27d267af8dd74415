package ledger_test

import (
	"github.com/orcamento-familiar/backend/pkg/ledger"
	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) incomeFixture() (ledger.BudgetDetail, models.Category) {
	budget := suite.createTestBudget(2026, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	category := suite.createTestCategory("Salário", types.CategoryIncome)
	return budget, category
}

func (suite *TestSuiteStandard) TestCreateIncomeOneOff() {
	budget, category := suite.incomeFixture()

	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[4].ID,
		CategoryID:    category.ID,
		Description:   "Décimo terceiro",
		Note:          "primeira parcela",
		Amount:        amount(2100),
		Received:      true,
		Recurrence:    types.RecurrenceNone,
	})

	suite.Require().Len(entries, 1)
	suite.Assert().Equal(budget.Months[4].ID, entries[0].BudgetMonthID)
	suite.Assert().Equal("Décimo terceiro", entries[0].Description)
	suite.Assert().Equal("primeira parcela", entries[0].Note)
	// the received flag is honored on the one-off path
	suite.Assert().True(entries[0].Received)
	suite.Assert().Nil(entries[0].InstallmentCount)
}

func (suite *TestSuiteStandard) TestCreateIncomeFixed() {
	budget, category := suite.incomeFixture()

	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Salário",
		Amount:        amount(4200),
		Received:      true,
		Recurrence:    types.RecurrenceFixed,
	})

	suite.Require().Len(entries, 12)
	for i, entry := range entries {
		suite.Assert().Equal(budget.Months[i].ID, entry.BudgetMonthID)
		// the full declared amount repeats, and expanded entries always
		// start out not received
		suite.Assert().True(entry.Amount.Equal(amount(4200)))
		suite.Assert().False(entry.Received)
	}
}

func (suite *TestSuiteStandard) TestCreateIncomeInstallmentSplitsAmount() {
	budget, category := suite.incomeFixture()

	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Restituição",
		Amount:        amount(300),
		Recurrence:    types.RecurrenceInstallment,
		Installments:  3,
	})

	suite.Require().Len(entries, 3)
	for i, entry := range entries {
		suite.Assert().True(entry.Amount.Equal(amount(100)), "installment %d should be 100.00, is %s", i+1, entry.Amount)
		suite.Assert().Equal(budget.Months[i].ID, entry.BudgetMonthID)
		suite.Require().NotNil(entry.InstallmentIndex)
		suite.Require().NotNil(entry.InstallmentCount)
		suite.Assert().Equal(i+1, *entry.InstallmentIndex)
		suite.Assert().Equal(3, *entry.InstallmentCount)
	}

	suite.Assert().Equal("Restituição (1/3)", entries[0].Description)
	suite.Assert().Equal("Restituição (2/3)", entries[1].Description)
	suite.Assert().Equal("Restituição (3/3)", entries[2].Description)
}

func (suite *TestSuiteStandard) TestCreateIncomeInstallmentRoundingDrift() {
	budget, category := suite.incomeFixture()

	// 100/3 does not divide evenly: each share is rounded independently
	// to 33.33 and the lost cent is accepted drift, not reconciled onto
	// the last installment.
	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Bônus",
		Amount:        amount(100),
		Recurrence:    types.RecurrenceInstallment,
		Installments:  3,
	})

	suite.Require().Len(entries, 3)
	total := decimal.Zero
	for _, entry := range entries {
		suite.Assert().True(entry.Amount.Equal(amount(33.33)))
		total = total.Add(entry.Amount)
	}
	suite.Assert().True(total.Equal(amount(99.99)))
}

func (suite *TestSuiteStandard) TestCreateIncomeInstallmentAnchored() {
	budget, category := suite.incomeFixture()

	// anchored at month 10, three installments land on 10, 11, 12
	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[9].ID,
		CategoryID:    category.ID,
		Description:   "Venda parcelada",
		Amount:        amount(900),
		Recurrence:    types.RecurrenceInstallment,
		Installments:  3,
	})

	suite.Require().Len(entries, 3)
	suite.Assert().Equal(types.MonthNumber(10), suite.monthNumberOf(entries[0].BudgetMonthID))
	suite.Assert().Equal(types.MonthNumber(12), suite.monthNumberOf(entries[2].BudgetMonthID))
}

// monthNumberOf resolves a budget month ID back to its month number.
func (suite *TestSuiteStandard) monthNumberOf(budgetMonthID uint64) types.MonthNumber {
	budgets, err := suite.ledger.Budgets()
	suite.Require().NoError(err)
	for _, budget := range budgets {
		for _, month := range budget.Months {
			if month.ID == budgetMonthID {
				return month.Month
			}
		}
	}

	suite.Assert().FailNow("budget month not found", "id: %d", budgetMonthID)
	return 0
}

func (suite *TestSuiteStandard) TestCreateIncomeInstallmentsDontFit() {
	budget, category := suite.incomeFixture()

	// anchored at month 11 of a 12-month budget only 2 months remain
	_, err := suite.ledger.CreateIncomeEntry(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[10].ID,
		CategoryID:    category.ID,
		Description:   "Venda parcelada",
		Amount:        amount(400),
		Recurrence:    types.RecurrenceInstallment,
		Installments:  4,
	})
	suite.Assert().ErrorIs(err, ledger.ErrInstallmentsDontFit)
}

func (suite *TestSuiteStandard) TestCreateIncomeValidation() {
	budget, category := suite.incomeFixture()
	otherBudget := suite.createTestBudget(2027, 1)
	expenseCategory := suite.createTestCategory("Mercado", types.CategoryExpense)

	create := ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Salário",
		Amount:        amount(100),
		Recurrence:    types.RecurrenceNone,
	}

	unknownBudget := create
	unknownBudget.BudgetID = 9999
	_, err := suite.ledger.CreateIncomeEntry(unknownBudget)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetNotFound)

	foreignMonth := create
	foreignMonth.BudgetMonthID = otherBudget.Months[0].ID
	_, err = suite.ledger.CreateIncomeEntry(foreignMonth)
	suite.Assert().ErrorIs(err, ledger.ErrMonthNotInBudget)

	wrongKind := create
	wrongKind.CategoryID = expenseCategory.ID
	_, err = suite.ledger.CreateIncomeEntry(wrongKind)
	suite.Assert().ErrorIs(err, ledger.ErrCategoryWrongKind)

	zeroAmount := create
	zeroAmount.Amount = decimal.Zero
	_, err = suite.ledger.CreateIncomeEntry(zeroAmount)
	suite.Assert().ErrorIs(err, ledger.ErrAmountNotPositive)

	wrongRecurrence := create
	wrongRecurrence.Recurrence = types.RecurrenceOneOff
	_, err = suite.ledger.CreateIncomeEntry(wrongRecurrence)
	suite.Assert().ErrorIs(err, ledger.ErrRecurrenceInvalid)

	noCount := create
	noCount.Recurrence = types.RecurrenceInstallment
	_, err = suite.ledger.CreateIncomeEntry(noCount)
	suite.Assert().ErrorIs(err, ledger.ErrInstallmentCount)

	unknownType := create
	unknownTypeID := uint64(9999)
	unknownType.IncomeTypeID = &unknownTypeID
	_, err = suite.ledger.CreateIncomeEntry(unknownType)
	suite.Assert().ErrorIs(err, ledger.ErrIncomeTypeNotFound)

	inactiveCategory := create
	_, err = suite.ledger.UpdateCategory(category.ID, ledger.CategoryUpdate{Active: boolPtr(false)})
	suite.Require().NoError(err)
	_, err = suite.ledger.CreateIncomeEntry(inactiveCategory)
	suite.Assert().ErrorIs(err, ledger.ErrCategoryInactive)
}

func (suite *TestSuiteStandard) TestSetIncomeReceived() {
	budget, category := suite.incomeFixture()

	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Salário",
		Amount:        amount(4200),
		Recurrence:    types.RecurrenceNone,
	})

	updated, err := suite.ledger.SetIncomeReceived(entries[0].ID, true)
	suite.Require().NoError(err)
	suite.Assert().True(updated.Received)

	_, err = suite.ledger.SetIncomeReceived(9999, true)
	suite.Assert().ErrorIs(err, ledger.ErrIncomeEntryNotFound)
}

func (suite *TestSuiteStandard) TestIncomeByMonth() {
	budget, category := suite.incomeFixture()

	entries := suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Salário",
		Amount:        amount(4200),
		Received:      true,
		Recurrence:    types.RecurrenceNone,
	})
	suite.createTestIncome(ledger.CreateIncome{
		BudgetID:      budget.ID,
		BudgetMonthID: budget.Months[0].ID,
		CategoryID:    category.ID,
		Description:   "Freelance",
		Amount:        amount(800.50),
		Recurrence:    types.RecurrenceNone,
	})
	suite.Require().Len(entries, 1)

	list, err := suite.ledger.IncomeByMonth(budget.ID, 1)
	suite.Require().NoError(err)
	suite.Assert().Len(list.Entries, 2)
	suite.Assert().True(list.Declared.Equal(amount(5000.50)), "declared is %s", list.Declared)
	suite.Assert().True(list.Received.Equal(amount(4200)), "received is %s", list.Received)

	_, err = suite.ledger.IncomeByMonth(budget.ID, 13)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetMonthNotFound)

	_, err = suite.ledger.IncomeByMonth(9999, 1)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetNotFound)
}
