// Package ports defines the interfaces (contracts) that adapters must
// implement. Domain and app logic depend only on these interfaces, never on
// concrete implementations.
package ports

import "github.com/lacour/qando/internal/domain/dataset"

// Storage persists the assembled dataset to durable local storage, indexed
// for lookup by webcast, case, and judge name. Concurrent reads are safe;
// writes are serialized by the adapter.
//
// Crash safety: SaveDataset must be transactional. A crash mid-write must
// not corrupt a previously committed dataset.
type Storage interface {
	// SaveDataset persists the full dataset, replacing any prior one.
	SaveDataset(records []dataset.Record) error

	// LoadDataset retrieves all records in stored order.
	// Returns nil, nil if no dataset has been saved.
	LoadDataset() ([]dataset.Record, error)

	// Query returns the records matching the filter, in stored order.
	Query(f Filter) ([]dataset.Record, error)

	// Count reports the number of stored records (0 when empty).
	Count() (int, error)

	// Wipe removes the stored dataset and its indexes.
	// Idempotent: wiping an empty store is not an error.
	Wipe() error

	// Close releases the underlying store.
	Close() error
}

// Filter narrows a Query. Zero-value fields do not constrain; HasQuestion
// and HasOpinion are tri-state via pointer.
type Filter struct {
	WebcastID   dataset.ID
	CaseID      dataset.ID
	Name        string
	HasQuestion *bool
	HasOpinion  *bool
	Language    string
	OpinionType dataset.OpinionType
}

// Matches reports whether the record satisfies every set constraint.
func (f Filter) Matches(r dataset.Record) bool {
	if f.WebcastID != "" && r.WebcastID != f.WebcastID {
		return false
	}
	if f.CaseID != "" && r.CaseID != f.CaseID {
		return false
	}
	if f.Name != "" && r.Name != f.Name {
		return false
	}
	if f.HasQuestion != nil && r.HasQuestion != *f.HasQuestion {
		return false
	}
	if f.HasOpinion != nil && r.HasOpinion != *f.HasOpinion {
		return false
	}
	if f.Language != "" && r.Language != f.Language {
		return false
	}
	if f.OpinionType != dataset.OpinionNone && r.OpinionType != f.OpinionType {
		return false
	}
	return true
}
