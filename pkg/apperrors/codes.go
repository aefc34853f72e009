package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и токены
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Бизнес-логика
	CodeDuplicateAccount ErrorCode = "DUPLICATE_ACCOUNT"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
