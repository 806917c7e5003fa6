// Package harvesterror defines the error taxonomy shared by the validation,
// store and persistence layers.
package harvesterror

import (
	"errors"
	"fmt"
)

// Field identifies which input field failed validation.
type Field string

const (
	FieldBatchID   Field = "batch_id"
	FieldMethod    Field = "method"
	FieldDate      Field = "date"
	FieldPredicted Field = "predicted_tons"
	FieldHarvested Field = "harvested_tons"
)

// ValidationError represents a single-field validation failure.
// Constraint carries the acceptable range or pattern so user-facing
// messages always name what would have been accepted.
type ValidationError struct {
	Field      Field
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Constraint)
}

// NotFoundError indicates a lookup or removal miss in the record store.
type NotFoundError struct {
	BatchID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record found for batch '%s'", e.BatchID)
}

// LoadError represents a bulk deserialization failure. The store is left
// unmodified when this is returned; Err is the underlying validation failure.
type LoadError struct {
	Source  string
	BatchID string
	Err     error
}

func (e *LoadError) Error() string {
	if e.BatchID != "" {
		return fmt.Sprintf("failed to load records from %s: batch '%s': %v",
			e.Source, e.BatchID, e.Err)
	}
	return fmt.Sprintf("failed to load records from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates an external persistence collaborator failure
// (storage or network down). The operation is aborted and in-memory state
// is unaffected.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence unavailable during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError, optionally for a
// specific field. Passing no fields matches any validation failure.
func IsValidation(err error, fields ...Field) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if ve.Field == f {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
