package errors

import "net/http"

// ErrorResponse is the structured body a caller renders for a failed operation
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Kind    string   `json:"kind,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithKind tags the response with the pipeline error kind
func WithKind(kind Kind) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Kind = string(kind)
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// GetHTTPStatus returns the HTTP status a transport should use for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case IngestUnsupportedFormat, IngestUnreadableFile, IngestMissingColumns,
		IngestMissingAmount, IngestInvalidAmount, IngestInvalidDate,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, GoalInvalidName, GoalInvalidTarget, GoalInvalidAllocation:
		return http.StatusBadRequest

	case IngestFileTooLarge:
		return http.StatusRequestEntityTooLarge

	case GoalNotFound:
		return http.StatusNotFound

	case ClassifierUnavailable, SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	case StoreTimeout:
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}
