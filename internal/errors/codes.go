// Package errors provides structured error handling for libcheck.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Library loading errors (dlopen, dlsym)
//   - 2XX: Initialization errors (library init, window, context)
//   - 3XX: Runtime errors (failing calls, driver queries)
//   - 4XX: Validation errors (bad input, malformed assets)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryLibrary indicates a native library could not be loaded or resolved.
	CategoryLibrary Category = "LIBRARY"
	// CategoryInit indicates a library failed to initialize.
	CategoryInit Category = "INIT"
	// CategoryRuntime indicates a library call failed after initialization.
	CategoryRuntime Category = "RUNTIME"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort the run.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the check failed but the run continues.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates the check could not apply, continuing.
	SeverityWarning Severity = "WARNING"
	// SeverityInfo indicates informational only.
	SeverityInfo Severity = "INFO"
)

// Error codes organized by category.
const (
	// Library errors (100-199)
	ErrCodeLibraryNotFound = "ERR_101_LIBRARY_NOT_FOUND"
	ErrCodeSymbolNotFound  = "ERR_102_SYMBOL_NOT_FOUND"
	ErrCodeUnsupportedOS   = "ERR_103_UNSUPPORTED_OS"

	// Init errors (200-299)
	ErrCodeInitFailed    = "ERR_201_INIT_FAILED"
	ErrCodeWindowFailed  = "ERR_202_WINDOW_FAILED"
	ErrCodeLoaderFailed  = "ERR_203_LOADER_FAILED"
	ErrCodeNotApplicable = "ERR_204_NOT_APPLICABLE"

	// Runtime errors (300-399)
	ErrCodeCallFailed  = "ERR_301_CALL_FAILED"
	ErrCodeDriverQuery = "ERR_302_DRIVER_QUERY"
	ErrCodeSimulation  = "ERR_303_SIMULATION"

	// Validation errors (400-499)
	ErrCodeInvalidInput    = "ERR_401_INVALID_INPUT"
	ErrCodeImportFailed    = "ERR_402_IMPORT_FAILED"
	ErrCodeIncompleteScene = "ERR_403_INCOMPLETE_SCENE"
	ErrCodeInvalidConfig   = "ERR_404_INVALID_CONFIG"

	// Internal errors (500-599)
	ErrCodeInternal  = "ERR_501_INTERNAL"
	ErrCodeCancelled = "ERR_502_CANCELLED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "101" from "ERR_101_LIBRARY_NOT_FOUND")
	numStr := code[4:7]
	if len(numStr) < 1 {
		return CategoryInternal
	}

	switch numStr[0] {
	case '1':
		return CategoryLibrary
	case '2':
		return CategoryInit
	case '3':
		return CategoryRuntime
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeInternal, ErrCodeCancelled:
		return SeverityFatal
	case ErrCodeNotApplicable, ErrCodeUnsupportedOS:
		return SeverityWarning
	}

	return SeverityError
}
