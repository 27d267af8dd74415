package models

// PredefinedExpense is a reusable expense template; entries created from
// it inherit its category and description.
type PredefinedExpense struct {
	Model
	Description string `json:"description"`
	CategoryID  uint64 `json:"categoryId"`
	Active      bool   `json:"active"`
}

// PredefinedExpense returns the predefined expense with the given ID, or nil.
func (s *Snapshot) PredefinedExpense(id uint64) *PredefinedExpense {
	for i := range s.PredefinedExpenses {
		if s.PredefinedExpenses[i].ID == id {
			return &s.PredefinedExpenses[i]
		}
	}
	return nil
}
