package errors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	ERROR_CODE_PREFIX = "KTM"

	// HREF for API errors
	ERROR_HREF = "/api/kafka-tenant-manager/v1/errors/"

	// Forbidden occurs when a namespace is not allowed to perform the action
	ErrorForbidden       ServiceErrorCode = 4
	ErrorForbiddenReason string           = "Forbidden to perform this action"

	// Conflict occurs when a resource collides with an existing one
	ErrorConflict       ServiceErrorCode = 6
	ErrorConflictReason string           = "An entity with the specified unique values already exists"

	// NotFound occurs when a record is not found in the database
	ErrorNotFound       ServiceErrorCode = 7
	ErrorNotFoundReason string           = "Resource not found"

	// Validation occurs when an object fails validation
	ErrorValidation       ServiceErrorCode = 8
	ErrorValidationReason string           = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       ServiceErrorCode = 9
	ErrorGeneralReason string           = "Unspecified error"

	// Bad Request
	ErrorBadRequest       ServiceErrorCode = 21
	ErrorBadRequestReason string           = "Bad request"

	// Timeout occurs when a cluster operation exceeds its configured deadline
	ErrorTimeout       ServiceErrorCode = 40
	ErrorTimeoutReason string           = "Operation exceeded its configured deadline"

	// Broker occurs when the Kafka cluster reports a failure for an operation
	ErrorBroker       ServiceErrorCode = 41
	ErrorBrokerReason string           = "Kafka cluster rejected the operation"

	// Interrupted occurs when a blocking operation is cancelled before it completes
	ErrorInterrupted       ServiceErrorCode = 42
	ErrorInterruptedReason string           = "Operation was interrupted"

	// UnsupportedOperation occurs when a capability is not available for the cluster provider
	ErrorUnsupportedOperation       ServiceErrorCode = 43
	ErrorUnsupportedOperationReason string           = "Operation is not supported for this cluster"

	// Connect occurs when a Kafka Connect cluster cannot serve a request
	ErrorConnect       ServiceErrorCode = 44
	ErrorConnectReason string           = "Kafka Connect cluster rejected the operation"

	// Catalog occurs when the metadata catalog cannot serve a request
	ErrorCatalog       ServiceErrorCode = 45
	ErrorCatalogReason string           = "Metadata catalog rejected the operation"
)

type ServiceErrorCode int

type ServiceErrors []ServiceError

func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{ErrorForbidden, ErrorForbiddenReason, http.StatusForbidden, nil},
		ServiceError{ErrorConflict, ErrorConflictReason, http.StatusConflict, nil},
		ServiceError{ErrorNotFound, ErrorNotFoundReason, http.StatusNotFound, nil},
		ServiceError{ErrorValidation, ErrorValidationReason, http.StatusBadRequest, nil},
		ServiceError{ErrorGeneral, ErrorGeneralReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorBadRequest, ErrorBadRequestReason, http.StatusBadRequest, nil},
		ServiceError{ErrorTimeout, ErrorTimeoutReason, http.StatusGatewayTimeout, nil},
		ServiceError{ErrorBroker, ErrorBrokerReason, http.StatusBadGateway, nil},
		ServiceError{ErrorInterrupted, ErrorInterruptedReason, http.StatusServiceUnavailable, nil},
		ServiceError{ErrorUnsupportedOperation, ErrorUnsupportedOperationReason, http.StatusNotImplemented, nil},
		ServiceError{ErrorConnect, ErrorConnectReason, http.StatusBadGateway, nil},
		ServiceError{ErrorCatalog, ErrorCatalogReason, http.StatusBadGateway, nil},
	}
}

type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// HttpCode is the HttpCode associated with the error when the error is returned as an API response
	HttpCode int
	// cause is the underlying error, if any
	cause error
}

// Reason can be a string with format verbs, which will be replace by the specified values
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(code, nil, reason, values...)
}

func NewWithCause(code ServiceErrorCode, cause error, reason string, values ...interface{}) *ServiceError {
	// If the code isn't defined, use the general error code
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{ErrorGeneral, ErrorGeneralReason, http.StatusInternalServerError, nil}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}
	err.cause = cause

	return err
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func (e *ServiceError) Is404() bool {
	return e.Code == ErrorNotFound
}

func (e *ServiceError) IsConflict() bool {
	return e.Code == ErrorConflict
}

func (e *ServiceError) IsTimeout() bool {
	return e.Code == ErrorTimeout
}

func (e *ServiceError) IsInterrupted() bool {
	return e.Code == ErrorInterrupted
}

func (e *ServiceError) IsUnsupportedOperation() bool {
	return e.Code == ErrorUnsupportedOperation
}

func (e *ServiceError) IsClientErrorClass() bool {
	return e.HttpCode >= http.StatusBadRequest && e.HttpCode < http.StatusInternalServerError
}

func (e *ServiceError) IsServerErrorClass() bool {
	return e.HttpCode >= http.StatusInternalServerError
}

func CodeStr(code ServiceErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

func Href(code ServiceErrorCode) string {
	return fmt.Sprintf("%s%d", ERROR_HREF, code)
}

// ToServiceError returns err unchanged when it already is (or wraps) a ServiceError.
func ToServiceError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return NewWithCause(ErrorGeneral, err, "%s", err.Error())
}

// HasCode reports whether err is a ServiceError carrying the given code.
func HasCode(err error, code ServiceErrorCode) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}

// FromOperationError classifies the failure of a blocking cluster call. A context
// deadline maps to Timeout, a cancelled context to Interrupted and anything else
// to Broker.
func FromOperationError(err error, reason string, values ...interface{}) *ServiceError {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(reason, values...)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewWithCause(ErrorTimeout, err, "%s: %s", msg, err.Error())
	case errors.Is(err, context.Canceled):
		return NewWithCause(ErrorInterrupted, err, "%s: %s", msg, err.Error())
	default:
		return NewWithCause(ErrorBroker, err, "%s: %s", msg, err.Error())
	}
}

func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

func Conflict(reason string, values ...interface{}) *ServiceError {
	return New(ErrorConflict, reason, values...)
}

func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

func BadRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBadRequest, reason, values...)
}

func Timeout(reason string, values ...interface{}) *ServiceError {
	return New(ErrorTimeout, reason, values...)
}

func Broker(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBroker, reason, values...)
}

func Interrupted(reason string, values ...interface{}) *ServiceError {
	return New(ErrorInterrupted, reason, values...)
}

func UnsupportedOperation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnsupportedOperation, reason, values...)
}

func Connect(cause error, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(ErrorConnect, cause, reason, values...)
}

func Catalog(cause error, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(ErrorCatalog, cause, reason, values...)
}
