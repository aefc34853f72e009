package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"servhub_backend/internal/messages"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки.
// Все ошибки потоков аутентификации отдаются клиенту с HTTP 400 и одним
// обобщенным сообщением, чтобы не раскрывать состояние аккаунта.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, messages.AuthErrors.InvalidCredentials, http.StatusBadRequest)
	ErrInvalidToken       = New(CodeInvalidToken, messages.AuthErrors.InvalidToken, http.StatusBadRequest)
	ErrDuplicateAccount   = New(CodeDuplicateAccount, messages.AuthErrors.AccountExists, http.StatusBadRequest)
	ErrUnauthorized       = New(CodeUnauthorized, messages.AuthErrors.Unauthorized, http.StatusBadRequest)

	ErrAlreadyConfirmed = New(CodeInvalidOperation, messages.AuthErrors.AlreadyConfirmed, http.StatusBadRequest)
	ErrAccountBanned    = New(CodeInvalidOperation, messages.AuthErrors.AccountBanned, http.StatusBadRequest)

	ErrInvalidOperation = New(CodeInvalidOperation, messages.CatalogErrors.InvalidOperation, http.StatusBadRequest)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusBadRequest)
}

func InvalidOperation(message string) *AppError {
	return New(CodeInvalidOperation, message, http.StatusBadRequest)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
