package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorFault says whether a service error was caused by the caller or the service.
type ErrorFault int

const (
	FaultUnknown ErrorFault = iota
	FaultClient
	FaultServer
)

func (f ErrorFault) String() string {
	switch f {
	case FaultClient:
		return "client"
	case FaultServer:
		return "server"
	}
	return "unknown"
}

// APIError is implemented by every service error shape.
type APIError interface {
	error
	ErrorCode() string
	ErrorMessage() string
	ErrorFault() ErrorFault
}

// ServiceError is the body shared by every service error shape.
type ServiceError struct {
	Code    ErrorCode `json:"Code,omitempty"`
	Message *string   `json:"Message,omitempty"`

	// RawCode is the code exactly as the service sent it. It is kept when
	// the code is not a known ErrorCode and Code is left empty.
	RawCode string `json:"-"`
}

func (e *ServiceError) message() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ServiceError) format(name string) string {
	if e.Code == "" && e.RawCode != "" {
		return fmt.Sprintf("%s (%s): %s", name, e.RawCode, e.message())
	}
	return fmt.Sprintf("%s: %s", name, e.message())
}

// BadRequestException is returned when the input is malformed or fails validation.
type BadRequestException struct {
	ServiceError
}

func (e *BadRequestException) Error() string          { return e.format(e.ErrorCode()) }
func (e *BadRequestException) ErrorCode() string      { return "BadRequestException" }
func (e *BadRequestException) ErrorMessage() string   { return e.message() }
func (e *BadRequestException) ErrorFault() ErrorFault { return FaultClient }

// ConflictException is returned when a request conflicts with the resource's state.
type ConflictException struct {
	ServiceError
}

func (e *ConflictException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ConflictException) ErrorCode() string      { return "ConflictException" }
func (e *ConflictException) ErrorMessage() string   { return e.message() }
func (e *ConflictException) ErrorFault() ErrorFault { return FaultClient }

// ForbiddenException is returned when the caller may not perform the action.
type ForbiddenException struct {
	ServiceError
}

func (e *ForbiddenException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ForbiddenException) ErrorCode() string      { return "ForbiddenException" }
func (e *ForbiddenException) ErrorMessage() string   { return e.message() }
func (e *ForbiddenException) ErrorFault() ErrorFault { return FaultClient }

// NotFoundException is returned when a referenced resource does not exist.
type NotFoundException struct {
	ServiceError
}

func (e *NotFoundException) Error() string          { return e.format(e.ErrorCode()) }
func (e *NotFoundException) ErrorCode() string      { return "NotFoundException" }
func (e *NotFoundException) ErrorMessage() string   { return e.message() }
func (e *NotFoundException) ErrorFault() ErrorFault { return FaultClient }

// ResourceLimitExceededException is returned when a quota would be exceeded.
type ResourceLimitExceededException struct {
	ServiceError
}

func (e *ResourceLimitExceededException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ResourceLimitExceededException) ErrorCode() string      { return "ResourceLimitExceededException" }
func (e *ResourceLimitExceededException) ErrorMessage() string   { return e.message() }
func (e *ResourceLimitExceededException) ErrorFault() ErrorFault { return FaultClient }

// ServiceFailureException is returned on an internal service failure.
type ServiceFailureException struct {
	ServiceError
}

func (e *ServiceFailureException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ServiceFailureException) ErrorCode() string      { return "ServiceFailureException" }
func (e *ServiceFailureException) ErrorMessage() string   { return e.message() }
func (e *ServiceFailureException) ErrorFault() ErrorFault { return FaultServer }

// ServiceUnavailableException is returned when the service is temporarily unavailable.
type ServiceUnavailableException struct {
	ServiceError
}

func (e *ServiceUnavailableException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ServiceUnavailableException) ErrorCode() string      { return "ServiceUnavailableException" }
func (e *ServiceUnavailableException) ErrorMessage() string   { return e.message() }
func (e *ServiceUnavailableException) ErrorFault() ErrorFault { return FaultServer }

// ThrottledClientException is returned when the caller exceeded its request rate.
type ThrottledClientException struct {
	ServiceError
}

func (e *ThrottledClientException) Error() string          { return e.format(e.ErrorCode()) }
func (e *ThrottledClientException) ErrorCode() string      { return "ThrottledClientException" }
func (e *ThrottledClientException) ErrorMessage() string   { return e.message() }
func (e *ThrottledClientException) ErrorFault() ErrorFault { return FaultClient }

// UnauthorizedClientException is returned when the caller is not authorized.
type UnauthorizedClientException struct {
	ServiceError
}

func (e *UnauthorizedClientException) Error() string          { return e.format(e.ErrorCode()) }
func (e *UnauthorizedClientException) ErrorCode() string      { return "UnauthorizedClientException" }
func (e *UnauthorizedClientException) ErrorMessage() string   { return e.message() }
func (e *UnauthorizedClientException) ErrorFault() ErrorFault { return FaultClient }

// GenericAPIError is returned for error documents that match no known shape.
type GenericAPIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *GenericAPIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}
func (e *GenericAPIError) ErrorCode() string    { return e.Code }
func (e *GenericAPIError) ErrorMessage() string { return e.Message }
func (e *GenericAPIError) ErrorFault() ErrorFault {
	if e.StatusCode >= 500 {
		return FaultServer
	}
	if e.StatusCode >= 400 {
		return FaultClient
	}
	return FaultUnknown
}

// ParseServiceError maps a service error document to its typed shape.
//
// The body's Code decides the shape; when it is missing or unknown, the
// HTTP status does. A body that is not JSON falls back to the status text.
func ParseServiceError(statusCode int, body []byte) error {
	var doc struct {
		Code    string  `json:"Code"`
		Message *string `json:"Message"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		doc.Code = ""
		doc.Message = nil
	}

	// An unrecognized code leaves Code empty; the status picks the shape.
	code, _ := ParseErrorCode(doc.Code)
	base := ServiceError{Code: code, Message: doc.Message, RawCode: doc.Code}

	switch code {
	case ErrorCodeBadRequest:
		return &BadRequestException{base}
	case ErrorCodeConflict:
		return &ConflictException{base}
	case ErrorCodeForbidden, ErrorCodeAccessDenied:
		return &ForbiddenException{base}
	case ErrorCodeNotFound:
		return &NotFoundException{base}
	case ErrorCodeResourceLimitExceeded:
		return &ResourceLimitExceededException{base}
	case ErrorCodeServiceFailure:
		return &ServiceFailureException{base}
	case ErrorCodeServiceUnavailable:
		return &ServiceUnavailableException{base}
	case ErrorCodeThrottled, ErrorCodeThrottling:
		return &ThrottledClientException{base}
	case ErrorCodeUnauthorized:
		return &UnauthorizedClientException{base}
	}

	switch statusCode {
	case http.StatusBadRequest:
		return &BadRequestException{base}
	case http.StatusUnauthorized:
		return &UnauthorizedClientException{base}
	case http.StatusForbidden:
		return &ForbiddenException{base}
	case http.StatusNotFound:
		return &NotFoundException{base}
	case http.StatusConflict:
		return &ConflictException{base}
	case http.StatusTooManyRequests:
		return &ThrottledClientException{base}
	case http.StatusInternalServerError:
		return &ServiceFailureException{base}
	case http.StatusServiceUnavailable:
		return &ServiceUnavailableException{base}
	}

	msg := base.message()
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &GenericAPIError{Code: doc.Code, Message: msg, StatusCode: statusCode}
}

// IsRetryableError reports whether err is a throttling or transient server
// error shape. The decision to retry belongs to the caller's runtime.
func IsRetryableError(err error) bool {
	var throttled *ThrottledClientException
	var unavailable *ServiceUnavailableException
	var failure *ServiceFailureException
	switch {
	case errors.As(err, &throttled), errors.As(err, &unavailable), errors.As(err, &failure):
		return true
	}
	var generic *GenericAPIError
	if errors.As(err, &generic) {
		return generic.StatusCode >= 500
	}
	return false
}
