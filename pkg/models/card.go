package models

import (
	"github.com/orcamento-familiar/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Card represents a credit card.
type Card struct {
	Model
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CardMonth groups a card's charges for one budget month (its invoice).
//
// It is created lazily, exactly once, on the first charge for the
// (card, budget month) pairing.
type CardMonth struct {
	Model
	CardID        uint64 `json:"cardId"`
	BudgetMonthID uint64 `json:"budgetMonthId"`
}

// CardCharge is a single charge on a card invoice.
type CardCharge struct {
	Model
	CardMonthID uint64           `json:"cardMonthId"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Kind        types.ChargeKind `json:"kind"`
	Paid        bool             `json:"paid"`
}

// Card returns the card with the given ID, or nil.
func (s *Snapshot) Card(id uint64) *Card {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return &s.Cards[i]
		}
	}
	return nil
}

// CardMonthFor returns the card month for a (card, budget month) pairing, or nil.
func (s *Snapshot) CardMonthFor(cardID, budgetMonthID uint64) *CardMonth {
	for i := range s.CardMonths {
		if s.CardMonths[i].CardID == cardID && s.CardMonths[i].BudgetMonthID == budgetMonthID {
			return &s.CardMonths[i]
		}
	}
	return nil
}

// CardCharge returns the card charge with the given ID, or nil.
func (s *Snapshot) CardCharge(id uint64) *CardCharge {
	for i := range s.CardCharges {
		if s.CardCharges[i].ID == id {
			return &s.CardCharges[i]
		}
	}
	return nil
}

// ChargesOf returns all charges grouped under a card month.
func (s *Snapshot) ChargesOf(cardMonthID uint64) []CardCharge {
	charges := make([]CardCharge, 0)
	for _, c := range s.CardCharges {
		if c.CardMonthID == cardMonthID {
			charges = append(charges, c)
		}
	}
	return charges
}
