package errors

// ErrorCode represents a standardized error code used throughout the pipeline
type ErrorCode string

// Statement ingestion error codes (INGEST_*)
const (
	IngestFileTooLarge      ErrorCode = "INGEST_001"
	IngestUnsupportedFormat ErrorCode = "INGEST_002"
	IngestUnreadableFile    ErrorCode = "INGEST_003"
	IngestMissingColumns    ErrorCode = "INGEST_004"
	IngestMissingAmount     ErrorCode = "INGEST_005"
	IngestInvalidAmount     ErrorCode = "INGEST_006"
	IngestInvalidDate       ErrorCode = "INGEST_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Classifier error codes (CLASSIFIER_*)
const (
	ClassifierPredictionFailed ErrorCode = "CLASSIFIER_001"
	ClassifierUnavailable      ErrorCode = "CLASSIFIER_002"
	ClassifierTrainingFailed   ErrorCode = "CLASSIFIER_003"
)

// Ledger store error codes (STORE_*)
const (
	StoreWriteFailed   ErrorCode = "STORE_001"
	StoreMissingColumn ErrorCode = "STORE_002"
	StoreReadFailed    ErrorCode = "STORE_003"
	StoreTimeout       ErrorCode = "STORE_004"
)

// Aggregation error codes (AGGREGATION_*)
const (
	AggregationMonthFailed ErrorCode = "AGGREGATION_001"
	AggregationGoalFailed  ErrorCode = "AGGREGATION_002"
	AggregationTotalFailed ErrorCode = "AGGREGATION_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound          ErrorCode = "GOAL_001"
	GoalInvalidName       ErrorCode = "GOAL_002"
	GoalInvalidTarget     ErrorCode = "GOAL_003"
	GoalInvalidAllocation ErrorCode = "GOAL_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Ingestion errors
	IngestFileTooLarge:      "File too large. Maximum allowed size is 10MB.",
	IngestUnsupportedFormat: "Unsupported file format. Please upload a CSV or Excel file.",
	IngestUnreadableFile:    "Could not read file. Please upload a valid CSV or Excel file.",
	IngestMissingColumns:    "Invalid file structure. Missing required columns.",
	IngestMissingAmount:     "Invalid data: Missing or corrupted Amount values.",
	IngestInvalidAmount:     "Invalid Amount format. Amount must be numeric.",
	IngestInvalidDate:       "Invalid Date format. Please ensure all dates are valid.",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Classifier errors
	ClassifierPredictionFailed: "Category prediction failed; transactions were left uncategorized",
	ClassifierUnavailable:      "Category classifier is temporarily unavailable",
	ClassifierTrainingFailed:   "Classifier training failed",

	// Store errors
	StoreWriteFailed:   "Failed to save transactions",
	StoreMissingColumn: "Ledger store rejected an unknown column",
	StoreReadFailed:    "Failed to read from the ledger store",
	StoreTimeout:       "Ledger store did not respond in time",

	// Aggregation errors
	AggregationMonthFailed: "Monthly income update failed",
	AggregationGoalFailed:  "Goal recomputation failed",
	AggregationTotalFailed: "Total income could not be computed",

	// Goal errors
	GoalNotFound:          "Goal not found",
	GoalInvalidName:       "Goal name is required and must be at most 50 characters",
	GoalInvalidTarget:     "Target amount must be greater than 1",
	GoalInvalidAllocation: "Income allocation must be between 0 and 99",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
