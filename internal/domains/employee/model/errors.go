package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of outcomes the employee core can fail with.
// The string value doubles as the error code sent to clients.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindNotFound        Kind = "EMPLOYEE_NOT_FOUND"
	KindRateLimited     Kind = "RATE_LIMITED"
	KindCreationFailed  Kind = "EMPLOYEE_CREATION_FAILED"
	KindDeletionFailed  Kind = "EMPLOYEE_DELETION_FAILED"
	KindNoData          Kind = "NO_EMPLOYEE_DATA"
	KindIntegration     Kind = "UPSTREAM_INTEGRATION_ERROR"
	KindService         Kind = "EMPLOYEE_SERVICE_ERROR"
)

// EmployeeError is the single error type returned by the gateway and the service.
type EmployeeError struct {
	Kind    Kind   // Outcome category, also the public error code
	Message string // Human-readable message
	Err     error  // Underlying error, kept for diagnostics
}

// Error implements error interface
func (e *EmployeeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewInvalidArgument(message string) *EmployeeError {
	return &EmployeeError{Kind: KindInvalidArgument, Message: message}
}

// NewBlankField builds the InvalidArgument returned for an empty or whitespace-only string input.
func NewBlankField(field string) *EmployeeError {
	return NewInvalidArgument(fmt.Sprintf("%s must not be null or empty", field))
}

func NewNotFound() *EmployeeError {
	return &EmployeeError{
		Kind:    KindNotFound,
		Message: "Employee not found. Please provide valid id.",
	}
}

func NewRateLimited(err error) *EmployeeError {
	return &EmployeeError{
		Kind:    KindRateLimited,
		Message: "Too many requests. Please try again later.",
		Err:     err,
	}
}

func NewCreationFailed(err error) *EmployeeError {
	return &EmployeeError{
		Kind:    KindCreationFailed,
		Message: "Failed to create employee",
		Err:     err,
	}
}

func NewDeletionFailed(name string, err error) *EmployeeError {
	return &EmployeeError{
		Kind:    KindDeletionFailed,
		Message: fmt.Sprintf("Error while deleting employee with name: %s", name),
		Err:     err,
	}
}

func NewNoData(message string) *EmployeeError {
	return &EmployeeError{Kind: KindNoData, Message: message}
}

// NewIntegrationError reports a transport fault or an unexpected upstream status.
func NewIntegrationError(message string, err error) *EmployeeError {
	return &EmployeeError{Kind: KindIntegration, Message: message, Err: err}
}

// NewServiceError is the opaque failure the service surfaces for non-domain faults.
func NewServiceError(message string, err error) *EmployeeError {
	return &EmployeeError{Kind: KindService, Message: message, Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// KindOf returns the kind of the outermost EmployeeError in the chain, or "" for foreign errors.
func KindOf(err error) Kind {
	var empErr *EmployeeError
	if errors.As(err, &empErr) {
		return empErr.Kind
	}
	return ""
}

func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }
func IsNotFound(err error) bool        { return KindOf(err) == KindNotFound }
func IsRateLimited(err error) bool     { return KindOf(err) == KindRateLimited }
func IsCreationFailed(err error) bool  { return KindOf(err) == KindCreationFailed }
func IsDeletionFailed(err error) bool  { return KindOf(err) == KindDeletionFailed }
func IsNoData(err error) bool          { return KindOf(err) == KindNoData }

// IsDomainError reports whether the error belongs to the closed taxonomy and should reach
// the caller unchanged. Integration, deletion and service faults are not in this set.
func IsDomainError(err error) bool {
	switch KindOf(err) {
	case KindInvalidArgument, KindNotFound, KindRateLimited, KindCreationFailed, KindNoData:
		return true
	default:
		return false
	}
}

// GetErrorCode returns the public error code for err
func GetErrorCode(err error) string {
	if kind := KindOf(err); kind != "" {
		return string(kind)
	}
	return "INTERNAL_ERROR"
}

// GetErrorMessage returns the client-facing message for err
func GetErrorMessage(err error) string {
	var empErr *EmployeeError
	if errors.As(err, &empErr) {
		return empErr.Message
	}
	return err.Error()
}

// GetErrorResponse maps a core error to the boundary's HTTP status, message and code.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch KindOf(err) {
	case KindInvalidArgument, KindCreationFailed:
		return http.StatusBadRequest, GetErrorMessage(err), GetErrorCode(err)
	case KindNotFound, KindNoData:
		return http.StatusNotFound, GetErrorMessage(err), GetErrorCode(err)
	case KindRateLimited:
		return http.StatusTooManyRequests, GetErrorMessage(err), GetErrorCode(err)
	case KindDeletionFailed, KindIntegration, KindService:
		return http.StatusInternalServerError, GetErrorMessage(err), GetErrorCode(err)
	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
