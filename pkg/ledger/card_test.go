package ledger_test

import (
	"github.com/orcamento-familiar/backend/pkg/ledger"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCard() {
	card := suite.createTestCard(" Nubank ")

	suite.Assert().Equal("Nubank", card.Description)
	suite.Assert().True(card.Active)

	cards, err := suite.ledger.Cards()
	suite.Require().NoError(err)
	suite.Assert().Len(cards, 1)

	got, err := suite.ledger.GetCard(card.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(card.ID, got.ID)

	_, err = suite.ledger.GetCard(9999)
	suite.Assert().ErrorIs(err, ledger.ErrCardNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCard() {
	card := suite.createTestCard("Nubank")

	updated, err := suite.ledger.UpdateCard(card.ID, ledger.CardUpdate{
		Description: strPtr("Nubank Ultravioleta"),
		Active:      boolPtr(false),
	})
	suite.Require().NoError(err)
	suite.Assert().Equal("Nubank Ultravioleta", updated.Description)
	suite.Assert().False(updated.Active)

	_, err = suite.ledger.UpdateCard(9999, ledger.CardUpdate{})
	suite.Assert().ErrorIs(err, ledger.ErrCardNotFound)
}

func (suite *TestSuiteStandard) TestCreateCardCharge() {
	budget := suite.createTestBudget(2026, 1, 2)
	card := suite.createTestCard("Nubank")

	charge, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(230.50), types.ChargeCurrent)
	suite.Require().NoError(err)
	suite.Assert().Equal("Mercado", charge.Description)
	suite.Assert().False(charge.Paid)
	suite.Assert().NotZero(charge.CardMonthID)
}

func (suite *TestSuiteStandard) TestCardMonthCreatedLazilyOnce() {
	budget := suite.createTestBudget(2026, 1, 2)
	card := suite.createTestCard("Nubank")

	first, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(100), types.ChargeCurrent)
	suite.Require().NoError(err)
	second, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Farmácia", amount(50), types.ChargeCurrent)
	suite.Require().NoError(err)

	// both charges share the card month created on the first charge
	suite.Assert().Equal(first.CardMonthID, second.CardMonthID)

	// a different budget month gets its own card month
	other, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[1].ID, "Assinatura", amount(30), types.ChargeRecurring)
	suite.Require().NoError(err)
	suite.Assert().NotEqual(first.CardMonthID, other.CardMonthID)
}

func (suite *TestSuiteStandard) TestCreateCardChargeValidation() {
	budget := suite.createTestBudget(2026, 1)
	card := suite.createTestCard("Nubank")

	_, err := suite.ledger.CreateCardCharge(9999, budget.Months[0].ID, "Mercado", amount(100), types.ChargeCurrent)
	suite.Assert().ErrorIs(err, ledger.ErrCardNotFound)

	_, err = suite.ledger.CreateCardCharge(card.ID, 9999, "Mercado", amount(100), types.ChargeCurrent)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetMonthNotFound)

	_, err = suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(100), "REFUND")
	suite.Assert().ErrorIs(err, ledger.ErrChargeKindInvalid)

	_, err = suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", decimal.Zero, types.ChargeCurrent)
	suite.Assert().ErrorIs(err, ledger.ErrAmountNotPositive)

	_, err = suite.ledger.UpdateCard(card.ID, ledger.CardUpdate{Active: boolPtr(false)})
	suite.Require().NoError(err)
	_, err = suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(100), types.ChargeCurrent)
	suite.Assert().ErrorIs(err, ledger.ErrCardInactive)
}

func (suite *TestSuiteStandard) TestSetCardChargePaid() {
	budget := suite.createTestBudget(2026, 1)
	card := suite.createTestCard("Nubank")

	charge, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(100), types.ChargeCurrent)
	suite.Require().NoError(err)

	updated, err := suite.ledger.SetCardChargePaid(charge.ID, true)
	suite.Require().NoError(err)
	suite.Assert().True(updated.Paid)

	_, err = suite.ledger.SetCardChargePaid(9999, true)
	suite.Assert().ErrorIs(err, ledger.ErrCardChargeNotFound)
}

func (suite *TestSuiteStandard) TestCardInvoice() {
	budget := suite.createTestBudget(2026, 1, 2)
	card := suite.createTestCard("Nubank")

	_, err := suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Mercado", amount(230.50), types.ChargeCurrent)
	suite.Require().NoError(err)
	_, err = suite.ledger.CreateCardCharge(card.ID, budget.Months[0].ID, "Notebook", amount(420), types.ChargeInstallment)
	suite.Require().NoError(err)

	invoice, err := suite.ledger.CardInvoice(card.ID, budget.ID, 1)
	suite.Require().NoError(err)
	suite.Assert().Equal(card.ID, invoice.Card.ID)
	suite.Assert().Len(invoice.Charges, 2)
	suite.Assert().True(invoice.Total.Equal(amount(650.50)), "total is %s", invoice.Total)

	// a month with no charges yields an empty invoice with zero total
	empty, err := suite.ledger.CardInvoice(card.ID, budget.ID, 2)
	suite.Require().NoError(err)
	suite.Assert().Empty(empty.Charges)
	suite.Assert().True(empty.Total.IsZero())

	_, err = suite.ledger.CardInvoice(card.ID, budget.ID, 3)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetMonthNotFound)

	_, err = suite.ledger.CardInvoice(9999, budget.ID, 1)
	suite.Assert().ErrorIs(err, ledger.ErrCardNotFound)
}
