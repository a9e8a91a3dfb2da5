package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Fund error codes (FUND_*)
const (
	FundNotFound      ErrorCode = "FUND_001"
	FundAlreadyExists ErrorCode = "FUND_002"
	FundInactive      ErrorCode = "FUND_003"
	FundInvalidCode   ErrorCode = "FUND_004"
)

// Ledger transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_002"
	TransactionInvalidType       ErrorCode = "TRANSACTION_003"
	TransactionAlreadyReconciled ErrorCode = "TRANSACTION_004"
	TransactionVoided            ErrorCode = "TRANSACTION_005"
)

// Statement import error codes (STATEMENT_*)
const (
	StatementEmptyFile      ErrorCode = "STATEMENT_001"
	StatementMalformedRows  ErrorCode = "STATEMENT_002"
	StatementMissingColumns ErrorCode = "STATEMENT_003"
	StatementTooManyRows    ErrorCode = "STATEMENT_004"
)

// Reconciliation error codes (RECONCILIATION_*)
const (
	ReconciliationSessionNotFound ErrorCode = "RECONCILIATION_001"
	ReconciliationItemNotFound    ErrorCode = "RECONCILIATION_002"
	ReconciliationAlreadyReviewed ErrorCode = "RECONCILIATION_003"
	ReconciliationNoMatch         ErrorCode = "RECONCILIATION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Fund errors
	FundNotFound:      "Fund not found",
	FundAlreadyExists: "A fund with this code already exists",
	FundInactive:      "Fund is inactive",
	FundInvalidCode:   "Invalid fund code format",

	// Ledger transaction errors
	TransactionNotFound:          "Ledger transaction not found",
	TransactionInvalidAmount:     "Invalid transaction amount",
	TransactionInvalidType:       "Invalid entry type",
	TransactionAlreadyReconciled: "Transaction has already been reconciled",
	TransactionVoided:            "Transaction has been voided",

	// Statement import errors
	StatementEmptyFile:      "Statement file contains no data rows",
	StatementMalformedRows:  "Statement file contains rows that could not be parsed",
	StatementMissingColumns: "Statement file is missing required columns",
	StatementTooManyRows:    "Statement file exceeds the maximum number of rows",

	// Reconciliation errors
	ReconciliationSessionNotFound: "Reconciliation session not found",
	ReconciliationItemNotFound:    "Reconciliation item not found",
	ReconciliationAlreadyReviewed: "Reconciliation item has already been reviewed",
	ReconciliationNoMatch:         "Reconciliation item has no matched transaction to confirm",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
