package models

// IncomeType describes a source of income, e.g. a salary.
type IncomeType struct {
	Model
	Description string `json:"description"`
	Recurring   bool   `json:"recurring"`
	Active      bool   `json:"active"`
}

// IncomeType returns the income type with the given ID, or nil.
func (s *Snapshot) IncomeType(id uint64) *IncomeType {
	for i := range s.IncomeTypes {
		if s.IncomeTypes[i].ID == id {
			return &s.IncomeTypes[i]
		}
	}
	return nil
}
