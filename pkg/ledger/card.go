package ledger

import (
	"fmt"
	"strings"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CreateCard creates an active card.
func (l *Ledger) CreateCard(description string) (models.Card, error) {
	var created models.Card

	err := l.update(func(s *models.Snapshot) error {
		created = models.Card{
			Model:       models.Model{ID: l.store.NextID(models.KindCard)},
			Description: strings.TrimSpace(description),
			Active:      true,
		}
		s.Cards = append(s.Cards, created)
		return nil
	})

	return created, err
}

// GetCard returns a card by ID.
func (l *Ledger) GetCard(id uint64) (models.Card, error) {
	var card models.Card

	err := l.view(func(s *models.Snapshot) error {
		found := s.Card(id)
		if found == nil {
			return ErrCardNotFound
		}
		card = *found
		return nil
	})

	return card, err
}

// Cards returns all cards, active and inactive.
func (l *Ledger) Cards() ([]models.Card, error) {
	cards := make([]models.Card, 0)

	err := l.view(func(s *models.Snapshot) error {
		cards = append(cards, s.Cards...)
		return nil
	})

	return cards, err
}

// CardUpdate carries the mutable fields of a card. Nil fields are left
// unchanged.
type CardUpdate struct {
	Description *string
	Active      *bool
}

// UpdateCard renames a card or flips its active flag. Existing card
// months and charges stay valid; an inactive card only refuses new
// charges.
func (l *Ledger) UpdateCard(id uint64, update CardUpdate) (models.Card, error) {
	var updated models.Card

	err := l.update(func(s *models.Snapshot) error {
		card := s.Card(id)
		if card == nil {
			return ErrCardNotFound
		}

		if update.Description != nil {
			card.Description = strings.TrimSpace(*update.Description)
		}
		if update.Active != nil {
			card.Active = *update.Active
		}

		updated = *card
		return nil
	})

	return updated, err
}

// CreateCardCharge appends a charge to a card's invoice for a budget
// month. The card month grouping the charge is looked up lazily and
// created exactly once per (card, budget month) pairing.
func (l *Ledger) CreateCardCharge(cardID, budgetMonthID uint64, description string, amount decimal.Decimal, kind types.ChargeKind) (models.CardCharge, error) {
	var created models.CardCharge

	err := l.update(func(s *models.Snapshot) error {
		card := s.Card(cardID)
		if card == nil {
			return ErrCardNotFound
		}
		if !card.Active {
			return fmt.Errorf("%w: %q", ErrCardInactive, card.Description)
		}

		if s.BudgetMonth(budgetMonthID) == nil {
			return ErrBudgetMonthNotFound
		}

		if !kind.Valid() {
			return fmt.Errorf("%w: %q", ErrChargeKindInvalid, kind)
		}

		if !amount.IsPositive() {
			return fmt.Errorf("%w: %s", ErrAmountNotPositive, amount)
		}

		cardMonth := s.CardMonthFor(cardID, budgetMonthID)
		if cardMonth == nil {
			s.CardMonths = append(s.CardMonths, models.CardMonth{
				Model:         models.Model{ID: l.store.NextID(models.KindCardMonth)},
				CardID:        cardID,
				BudgetMonthID: budgetMonthID,
			})
			cardMonth = &s.CardMonths[len(s.CardMonths)-1]
		}

		created = models.CardCharge{
			Model:       models.Model{ID: l.store.NextID(models.KindCardCharge)},
			CardMonthID: cardMonth.ID,
			Description: strings.TrimSpace(description),
			Amount:      amount,
			Kind:        kind,
		}
		s.CardCharges = append(s.CardCharges, created)

		log.Debug().Uint64("card", cardID).Uint64("cardMonth", cardMonth.ID).Msg("card charge created")
		return nil
	})

	return created, err
}

// SetCardChargePaid flips the paid flag of a card charge.
func (l *Ledger) SetCardChargePaid(id uint64, paid bool) (models.CardCharge, error) {
	var updated models.CardCharge

	err := l.update(func(s *models.Snapshot) error {
		charge := s.CardCharge(id)
		if charge == nil {
			return ErrCardChargeNotFound
		}

		charge.Paid = paid
		updated = *charge
		return nil
	})

	return updated, err
}

// Invoice is the list of a card's charges for one budget month.
type Invoice struct {
	Card    models.Card         `json:"card"`
	Charges []models.CardCharge `json:"charges"`
	Total   decimal.Decimal     `json:"total"`
}

// CardInvoice returns a card's charges for a budget month with their
// summed amount. A pairing without a card month yields an empty invoice
// with a zero total.
func (l *Ledger) CardInvoice(cardID, budgetID uint64, month types.MonthNumber) (Invoice, error) {
	invoice := Invoice{Charges: make([]models.CardCharge, 0)}

	err := l.view(func(s *models.Snapshot) error {
		card := s.Card(cardID)
		if card == nil {
			return ErrCardNotFound
		}
		invoice.Card = *card

		if s.Budget(budgetID) == nil {
			return ErrBudgetNotFound
		}

		budgetMonth := s.MonthOf(budgetID, month)
		if budgetMonth == nil {
			return fmt.Errorf("%w: %s in budget %d", ErrBudgetMonthNotFound, month, budgetID)
		}

		cardMonth := s.CardMonthFor(cardID, budgetMonth.ID)
		if cardMonth == nil {
			return nil
		}

		invoice.Charges = s.ChargesOf(cardMonth.ID)
		for _, charge := range invoice.Charges {
			invoice.Total = invoice.Total.Add(charge.Amount)
		}
		return nil
	})

	return invoice, err
}
