// Package core implements the reconciliation engine: it decides, per
// record, whether to create or update the corresponding CRM resource,
// resolves cross-record associations through the Tracker, and drives a
// full migration run while aggregating per-record failures.
package core

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a system-level sync failure. Data-quality
// failures use schema.DataError instead; the two taxonomies are never
// conflated in the final report.
type ErrorKind string

const (
	KindEnvironment   ErrorKind = "Environment"
	KindAPI           ErrorKind = "API"
	KindDataIntegrity ErrorKind = "Data Integrity"
	KindUnknown       ErrorKind = "Unknown"
)

// AppError is a categorized failure raised while syncing a record. It is
// scoped to one record and never aborts the batch, except for
// KindEnvironment which is raised before any record is attempted.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func apiErrorf(format string, args ...any) *AppError {
	return &AppError{Kind: KindAPI, Message: fmt.Sprintf(format, args...)}
}

func integrityErrorf(format string, args ...any) *AppError {
	return &AppError{Kind: KindDataIntegrity, Message: fmt.Sprintf(format, args...)}
}

// wrapUnknown preserves the batch-continuation contract: any error that
// escapes a record's sync without a category becomes KindUnknown so the
// loop can report it and move on.
func wrapUnknown(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{Kind: KindUnknown, Message: err.Error()}
}
