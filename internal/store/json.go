package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"
	"canefield/harvest-csv/internal/validation"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// BuildAll validates every serialized row before committing any of them.
// On the first failure it returns a LoadError wrapping the validation
// failure and no records; the caller's state stays untouched.
func BuildAll(rows []models.RecordRow, limits config.Limits, source string) ([]models.HarvestRecord, error) {
	records := make([]models.HarvestRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := validation.ValidateAndBuild(row, limits)
		if err != nil {
			return nil, &harvesterror.LoadError{
				Source:  source,
				BatchID: row.BatchID,
				Err:     err,
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadFile bulk-replaces the store contents with the records in the JSON
// file at path. A missing file leaves an empty store and is not an error.
// All rows are validated before any commit; on failure the store is left
// exactly as it was.
func (s *RecordStore) LoadFile(path string, limits config.Limits) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("No records file found, starting empty")
			s.ReplaceAll(nil)
			return nil
		}
		return &harvesterror.PersistenceError{Op: "load", Err: err}
	}

	var rows []models.RecordRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return &harvesterror.LoadError{Source: path, Err: err}
	}

	records, err := BuildAll(rows, limits, path)
	if err != nil {
		return err
	}

	s.ReplaceAll(records)
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(records),
	}).Debug("Loaded harvest records")
	return nil
}

// SaveFile externalizes the full collection to the JSON file at path,
// overwriting any previous contents. Single-writer overwrite semantics;
// failures surface as PersistenceError and leave memory unaffected.
func (s *RecordStore) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &harvesterror.PersistenceError{Op: "save", Err: fmt.Errorf("creating directory %s: %w", dir, err)}
	}

	data, err := json.MarshalIndent(models.Rows(s.records), "", "    ")
	if err != nil {
		return &harvesterror.PersistenceError{Op: "save", Err: err}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return &harvesterror.PersistenceError{Op: "save", Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(s.records),
	}).Debug("Saved harvest records")
	return nil
}
