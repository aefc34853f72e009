package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке.
// Форма провода: {"errors": [<строка или объект поле->сообщение>, ...]}
type ErrorResponse struct {
	Errors []interface{} `json:"errors"`
}

// HandleError - терминальный обработчик ошибок для Gin.
// Любая ошибка приложения сворачивается в список errors.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Errors: errorList(appErr)})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// errorList разворачивает AppError в список элементов ответа.
// Ошибки валидации несут карту поле->сообщение в Details — каждая пара
// становится отдельным элементом; остальные ошибки дают один элемент.
func errorList(appErr *AppError) []interface{} {
	switch details := appErr.Details.(type) {
	case map[string]string:
		out := make([]interface{}, 0, len(details))
		for field, msg := range details {
			out = append(out, gin.H{"param": field, "msg": msg})
		}
		return out
	case []string:
		out := make([]interface{}, 0, len(details))
		for _, msg := range details {
			out = append(out, msg)
		}
		return out
	default:
		return []interface{}{appErr.Message}
	}
}
