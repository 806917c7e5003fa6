// Package store provides the in-memory harvest record collection and its
// JSON file persistence.
//
// The store is built for a single caller; it carries no locking. Reusing it
// behind a server requires one exclusive lock around load/upsert/save.
package store

import (
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"
)

// RecordStore is an ordered collection of harvest records keyed by batch id.
// Iteration order is insertion order; replacing a record keeps its position.
type RecordStore struct {
	records []models.HarvestRecord
	index   map[string]int
}

// NewRecordStore creates an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		index: make(map[string]int),
	}
}

// Upsert inserts a record or replaces the existing record with the same
// batch id. A replaced record keeps its original position in iteration
// order. Always succeeds.
func (s *RecordStore) Upsert(rec models.HarvestRecord) {
	if i, ok := s.index[rec.BatchID]; ok {
		s.records[i] = rec
		return
	}
	s.index[rec.BatchID] = len(s.records)
	s.records = append(s.records, rec)
}

// Remove deletes the record with the given batch id. It returns false when
// no such record exists.
func (s *RecordStore) Remove(batchID string) bool {
	i, ok := s.index[batchID]
	if !ok {
		return false
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.index, batchID)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].BatchID] = j
	}
	return true
}

// Get returns the record with the given batch id, or a NotFoundError.
func (s *RecordStore) Get(batchID string) (models.HarvestRecord, error) {
	i, ok := s.index[batchID]
	if !ok {
		return models.HarvestRecord{}, &harvesterror.NotFoundError{BatchID: batchID}
	}
	return s.records[i], nil
}

// List returns all records in their current insertion/replacement order.
// The returned slice is a copy; mutating it does not affect the store.
func (s *RecordStore) List() []models.HarvestRecord {
	out := make([]models.HarvestRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the store.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// ReplaceAll discards the current contents and installs the given records.
// Duplicate batch ids follow upsert semantics: the later record wins and
// keeps the position of the first occurrence.
func (s *RecordStore) ReplaceAll(records []models.HarvestRecord) {
	s.records = s.records[:0]
	s.index = make(map[string]int, len(records))
	for _, rec := range records {
		s.Upsert(rec)
	}
}
