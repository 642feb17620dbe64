package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeTooLarge     ErrorCode = "PAYLOAD_TOO_LARGE"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// Validation возвращает ошибку валидации с форматированным сообщением.
func Validation(format string, args ...any) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf(format, args...))
}

// Conflict возвращает ошибку конфликта с форматированным сообщением.
func Conflict(format string, args ...any) *AppError {
	return New(ErrCodeConflict, fmt.Sprintf(format, args...))
}

// NotFound возвращает ошибку отсутствия ресурса.
func NotFound(format string, args ...any) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf(format, args...))
}

// Internal оборачивает неожиданную ошибку хранилища.
func Internal(err error) *AppError {
	return Wrap(err, ErrCodeInternal, "внутренняя ошибка сервера")
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// As извлекает AppError из цепочки ошибок.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func IsConflict(err error) bool {
	return hasCode(err, ErrCodeConflict)
}

func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized)
}

var (
	ErrUnauthorized         = New(ErrCodeUnauthorized, "требуется авторизация")
	ErrInvalidCredentials   = New(ErrCodeUnauthorized, "неверные учетные данные")
	ErrSessionExpired       = New(ErrCodeUnauthorized, "сессия истекла")
	ErrSkillNotFound        = New(ErrCodeNotFound, "навык не найден")
	ErrCategoryNotFound     = New(ErrCodeNotFound, "категория не найдена")
	ErrProjectNotFound      = New(ErrCodeNotFound, "проект не найден")
	ErrExperienceNotFound   = New(ErrCodeNotFound, "опыт работы не найден")
	ErrTestimonialNotFound  = New(ErrCodeNotFound, "отзыв не найден")
	ErrMediaNotFound        = New(ErrCodeNotFound, "файл не найден")
	ErrMessageNotFound      = New(ErrCodeNotFound, "сообщение не найдено")
	ErrSkillNotSelected     = New(ErrCodeNotFound, "навык не выбран для раздела «Обо мне»")
	ErrSkillAlreadySelected = New(ErrCodeConflict, "навык уже выбран")
)
