// Package models implements the entities of the budget ledger and the
// snapshot document they are persisted in.
package models

// Model is the base model for all entities in the ledger.
//
// Identifiers are positive integers, unique within their entity kind,
// allocated from the store's per-kind monotonic counter and never reused.
type Model struct {
	ID uint64 `json:"id"`
}
