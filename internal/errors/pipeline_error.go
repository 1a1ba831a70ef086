package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies a pipeline failure by the stage that produced it and the
// recovery policy attached to it.
type Kind string

const (
	// KindValidation aborts the whole file and is surfaced verbatim.
	KindValidation Kind = "ValidationError"
	// KindClassifier skips categorization for the batch.
	KindClassifier Kind = "ClassifierError"
	// KindStoreWrite is surfaced after at most one stripped-column retry.
	KindStoreWrite Kind = "StoreWriteError"
	// KindAggregation skips one month or goal.
	KindAggregation Kind = "AggregationError"
)

// PipelineError carries a stable code and kind plus the user-facing reason.
type PipelineError struct {
	Kind    Kind
	Code    ErrorCode
	Reason  string
	Details []string
	// Row is the 1-based data row that failed, 0 when the error is not row specific.
	Row int
	Err error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Kind, e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Reason)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ToResponse renders the error as a structured body for a transport layer.
func (e *PipelineError) ToResponse(traceID string) *ErrorResponse {
	opts := []ErrorOption{WithKind(e.Kind), WithMessage(e.Reason)}
	if len(e.Details) > 0 {
		opts = append(opts, WithDetails(e.Details...))
	}
	return NewErrorResponse(e.Code, traceID, opts...)
}

// IsClientError reports whether the caller, not the system, caused the failure.
func (e *PipelineError) IsClientError() bool {
	status := GetHTTPStatus(e.Code)
	return status >= 400 && status < 500
}

// NewValidationFailure builds a ValidationError with the default reason for code.
func NewValidationFailure(code ErrorCode) *PipelineError {
	return &PipelineError{
		Kind:   KindValidation,
		Code:   code,
		Reason: GetErrorMessage(code),
	}
}

// NewRowFailure builds a ValidationError pinned to a data row.
func NewRowFailure(code ErrorCode, row int, err error) *PipelineError {
	pe := NewValidationFailure(code)
	pe.Row = row
	pe.Err = err
	if row > 0 {
		pe.Details = []string{fmt.Sprintf("row %d", row)}
	}
	return pe
}

// NewMissingColumns builds the schema failure naming exactly the absent headers.
func NewMissingColumns(missing []string) *PipelineError {
	return &PipelineError{
		Kind:    KindValidation,
		Code:    IngestMissingColumns,
		Reason:  fmt.Sprintf("Invalid file structure. Missing required columns: %s.", strings.Join(missing, ", ")),
		Details: append([]string(nil), missing...),
	}
}

func NewClassifierFailure(code ErrorCode, err error) *PipelineError {
	return &PipelineError{
		Kind:   KindClassifier,
		Code:   code,
		Reason: GetErrorMessage(code),
		Err:    err,
	}
}

func NewStoreWriteFailure(code ErrorCode, err error) *PipelineError {
	return &PipelineError{
		Kind:   KindStoreWrite,
		Code:   code,
		Reason: GetErrorMessage(code),
		Err:    err,
	}
}

func NewAggregationFailure(code ErrorCode, subject string, err error) *PipelineError {
	return &PipelineError{
		Kind:    KindAggregation,
		Code:    code,
		Reason:  GetErrorMessage(code),
		Details: []string{subject},
		Err:     err,
	}
}

// AsPipelineError unwraps err to a *PipelineError when one is in the chain.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsKind reports whether err carries a PipelineError of the given kind.
func IsKind(err error, kind Kind) bool {
	pe, ok := AsPipelineError(err)
	return ok && pe.Kind == kind
}

// HasCode reports whether err carries a PipelineError with the given code.
func HasCode(err error, code ErrorCode) bool {
	pe, ok := AsPipelineError(err)
	return ok && pe.Code == code
}
