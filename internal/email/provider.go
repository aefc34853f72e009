package email

// Mailer определяет интерфейс для писем аутентификации и модерации
type Mailer interface {
	// SendConfirmation отправляет письмо с токеном подтверждения почты
	SendConfirmation(to, hostname, token string) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to, hostname, token string) error

	// SendBusinessDecision уведомляет бизнес о решении модерации
	SendBusinessDecision(to string, approved bool) error

	// Send отправляет произвольное сообщение
	Send(msg *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// Email представляет структуру email сообщения
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}
