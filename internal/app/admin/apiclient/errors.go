package apiclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorKind классифицирует ошибки клиента storefront API.
// UI по этому коду выбирает способ отображения (баннер, toast, retry)
type ErrorKind string

const (
	// KindNetwork - транспорт упал до получения HTTP ответа (DNS, connect)
	KindNetwork ErrorKind = "network"
	// KindTimeout - запрос не уложился в настроенный таймаут
	KindTimeout ErrorKind = "timeout"
	// KindHTTP - сервер ответил статусом вне [200,299]
	KindHTTP ErrorKind = "http"
	// KindNotFound - частный случай HTTP ошибки со статусом 404
	KindNotFound ErrorKind = "not_found"
	// KindUnrecognizedShape - сервер доступен и ответил 2xx, но конверт
	// ответа не совпал ни с одной известной формой. Это нарушение контракта,
	// а не сетевой сбой, поэтому отдельный kind
	KindUnrecognizedShape ErrorKind = "unrecognized_shape"
	// KindValidation - локальная проверка не прошла, запрос не отправлялся
	KindValidation ErrorKind = "validation"
)

// Error - типизированная ошибка клиента storefront API.
// Все слои пробрасывают её наверх без изменения kind
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP статус, только для KindHTTP/KindNotFound
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf возвращает ErrorKind ошибки или пустую строку для чужих ошибок
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsNotFound сообщает, что сервер ответил 404
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation сообщает, что запрос отклонен локально без похода в сеть
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsUnrecognizedShape сообщает, что ответ пришел в неизвестном конверте
func IsUnrecognizedShape(err error) bool {
	return KindOf(err) == KindUnrecognizedShape
}

func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func newShapeError(resource string) *Error {
	return &Error{
		Kind:    KindUnrecognizedShape,
		Message: fmt.Sprintf("unexpected data format in %s response", resource),
	}
}

// validationError превращает ошибку go-playground/validator в Error
// с перечислением полей, не прошедших проверку
func validationError(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newValidationError(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return newValidationError("invalid fields: " + strings.Join(fields, ", "))
}
