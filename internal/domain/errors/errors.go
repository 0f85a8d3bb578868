package errors

import (
	"net/http"

	"couponhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches BaseErrors by business error code, so a copy produced by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors. Referenced-entity lookups surface as 400, not 404,
	// because they reject a nested reference in the request body.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_EXISTS",
		"An account with this email or handle already exists",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_NOT_FOUND",
		"No account with such email",
		"",
	)

	ErrWrongAccountKind = NewBaseError(
		http.StatusBadRequest,
		"WRONG_ACCOUNT_KIND",
		"Cannot send pin to a vendor!",
		"",
	)

	ErrCodeExpired = NewBaseError(
		http.StatusBadRequest,
		"CODE_EXPIRED",
		"Code expired!",
		"",
	)

	ErrInvalidCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CODE",
		"Wrong code!",
		"",
	)

	ErrOrganizationLimit = NewBaseError(
		http.StatusBadRequest,
		"ORGANIZATION_LIMIT",
		"Vendor can have only one organization",
		"",
	)

	ErrOrganizationNameTaken = NewBaseError(
		http.StatusBadRequest,
		"ORGANIZATION_NAME_TAKEN",
		"An organization with this name already exists",
		"",
	)

	ErrOrganizationLocked = NewBaseError(
		http.StatusBadRequest,
		"ORGANIZATION_LOCKED",
		"To edit verified organization, you need to contact admin",
		"",
	)

	ErrOrganizationNotVerified = NewBaseError(
		http.StatusBadRequest,
		"ORGANIZATION_NOT_VERIFIED",
		"Organization must be verified!",
		"",
	)

	ErrReferenceNotFound = NewBaseError(
		http.StatusBadRequest,
		"REFERENCE_NOT_FOUND",
		"Referenced entity does not exist",
		"",
	)

	// Authentication errors. The distinct "does not exist" message leaks
	// account existence; preserved as a documented property of the design.
	ErrAccountDoesNotExist = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DOES_NOT_EXIST",
		"Account with this email does not exist",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Unable to log in with provided credentials",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrMissingCredential = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIAL",
		"Authentication credentials were not provided",
		"",
	)

	// Authorization errors. Each predicate failure carries its own message
	// even though the HTTP-level signal is a uniform 403.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"You must be an owner of this resource",
		"",
	)

	ErrNotVendor = NewBaseError(
		http.StatusForbidden,
		"NOT_VENDOR",
		"User is not Vendor!",
		"",
	)

	ErrNotConsumer = NewBaseError(
		http.StatusForbidden,
		"NOT_CONSUMER",
		"User is not Consumer!",
		"",
	)

	ErrVendorNotVerified = NewBaseError(
		http.StatusForbidden,
		"VENDOR_NOT_VERIFIED",
		"Vendor email must be verified",
		"",
	)

	ErrVendorRestricted = NewBaseError(
		http.StatusForbidden,
		"VENDOR_RESTRICTED",
		"Vendor is restricted from publishing",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"Superuser privilege required",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
