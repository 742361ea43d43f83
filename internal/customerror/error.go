package customerror

import (
	"fmt"
	"net/http"
)

type CustomError interface {
	Error() string
	GetHTTPCode() int
}

// UserFacingError - ошибка, текст которой можно показать в форме
type UserFacingError interface {
	CustomError
	UserMessage() string
}

type ValidationError struct {
	httpCode int
	message  string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{httpCode: http.StatusUnprocessableEntity, message: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.message)
}

func (e *ValidationError) GetHTTPCode() int {
	return e.httpCode
}

func (e *ValidationError) UserMessage() string {
	return e.message
}

type AuthRejectionError struct {
	httpCode int
	message  string
	cause    error
}

func NewAuthRejectionError(msg string, cause error) *AuthRejectionError {
	return &AuthRejectionError{httpCode: http.StatusUnauthorized, message: msg, cause: cause}
}

func (e *AuthRejectionError) Error() string {
	return fmt.Sprintf("login rejected: %v", e.cause)
}

func (e *AuthRejectionError) Unwrap() error {
	return e.cause
}

func (e *AuthRejectionError) GetHTTPCode() int {
	return e.httpCode
}

func (e *AuthRejectionError) UserMessage() string {
	return e.message
}

type RegistrationRejectionError struct {
	httpCode int
	message  string
	cause    error
}

// NewRegistrationRejectionError без ответа сервера (сеть, таймаут) отдаёт 502
func NewRegistrationRejectionError(statusCode int, msg string, cause error) *RegistrationRejectionError {
	if statusCode == 0 {
		statusCode = http.StatusBadGateway
	}
	return &RegistrationRejectionError{httpCode: statusCode, message: msg, cause: cause}
}

func (e *RegistrationRejectionError) Error() string {
	return fmt.Sprintf("registration rejected: %v", e.cause)
}

func (e *RegistrationRejectionError) Unwrap() error {
	return e.cause
}

func (e *RegistrationRejectionError) GetHTTPCode() int {
	return e.httpCode
}

func (e *RegistrationRejectionError) UserMessage() string {
	return e.message
}

type StorageError struct {
	httpCode int
	message  string
	cause    error
}

func NewStorageError(msg string, cause error) *StorageError {
	return &StorageError{httpCode: http.StatusInternalServerError, message: msg, cause: cause}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.cause)
}

func (e *StorageError) Unwrap() error {
	return e.cause
}

func (e *StorageError) GetHTTPCode() int {
	return e.httpCode
}

func (e *StorageError) UserMessage() string {
	return e.message
}

type CommonPGError struct {
	httpCode int
	message  string
}

func NewCommonPGError(msg string) *CommonPGError {
	return &CommonPGError{httpCode: http.StatusInternalServerError, message: msg}
}

func (e *CommonPGError) Error() string {
	return e.message
}

func (e *CommonPGError) GetHTTPCode() int {
	return e.httpCode
}
