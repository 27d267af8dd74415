package models

import "github.com/orcamento-familiar/backend/pkg/types"

// Category classifies income or expense entries.
type Category struct {
	Model
	Name   string             `json:"name"`
	Kind   types.CategoryKind `json:"kind"`
	Active bool               `json:"active"`
}

// Category returns the category with the given ID, or nil.
func (s *Snapshot) Category(id uint64) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}
