package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Command error codes (COMMAND_*). These are the user-input and resolution
// failures a text command can produce.
const (
	WrongPartsCount      ErrorCode = "COMMAND_001"
	BadFirstCharForEntry ErrorCode = "COMMAND_002"
	CantRecognizeAmount  ErrorCode = "COMMAND_003"
	CantFindAccount      ErrorCode = "COMMAND_004"
	CantFindCategory     ErrorCode = "COMMAND_005"
	TooBigAmount         ErrorCode = "COMMAND_006"
	UserAlreadyExists    ErrorCode = "COMMAND_007"
	CantRecognize        ErrorCode = "COMMAND_008"
)

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Resource error codes
const (
	AccountNotFound     ErrorCode = "ACCOUNT_001"
	AccountTitleTaken   ErrorCode = "ACCOUNT_002"
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryTitleTaken  ErrorCode = "CATEGORY_002"
	SubcategoryNotFound ErrorCode = "CATEGORY_003"
	SubcategoryMismatch ErrorCode = "CATEGORY_004"
	AliasNotFound       ErrorCode = "ALIAS_001"
	AliasTaken          ErrorCode = "ALIAS_002"
	EntryNotFound       ErrorCode = "ENTRY_001"
	TransferNotFound    ErrorCode = "TRANSFER_001"
	UserNotFound        ErrorCode = "USER_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages.
// Command messages are shown verbatim to chat users.
var errorMessages = map[ErrorCode]string{
	// Command errors
	WrongPartsCount:      "Сообщение должно состоять из трех (для записи) или четырех (для перевода) частей, разделенных пробелом",
	BadFirstCharForEntry: "Сумма должна начинаться с + или -",
	CantRecognizeAmount:  "Сумма должна быть десятичным числом, в котором можно использовать `k` и `к`",
	CantFindAccount:      "Не могу найти аккаунт по такому алиасу",
	CantFindCategory:     "Не могу найти категорию или подкатегорию по такому алиасу",
	TooBigAmount:         "Введена слишком большая сумма (больше 10^14)",
	UserAlreadyExists:    "Пользователь с таким ником уже есть в системе, и это не вы",
	CantRecognize:        "Не могу распознать",

	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Resource errors
	AccountNotFound:     "Account not found",
	AccountTitleTaken:   "An account with this title already exists",
	CategoryNotFound:    "Category not found",
	CategoryTitleTaken:  "A category with this title already exists",
	SubcategoryNotFound: "Subcategory not found",
	SubcategoryMismatch: "Subcategory does not belong to the category",
	AliasNotFound:       "Alias not found",
	AliasTaken:          "This alias is already in use",
	EntryNotFound:       "Entry not found",
	TransferNotFound:    "Transfer not found",
	UserNotFound:        "User not found",

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

// IsCommandError reports whether the code belongs to the command taxonomy.
func IsCommandError(code ErrorCode) bool {
	switch code {
	case WrongPartsCount, BadFirstCharForEntry, CantRecognizeAmount,
		CantFindAccount, CantFindCategory, TooBigAmount, UserAlreadyExists, CantRecognize:
		return true
	}
	return false
}
