package email

import "time"

// SMTPConfig - параметры подключения к SMTP серверу. Заполняется из
// секции email конфигурации приложения; Timeout ограничивает установку
// соединения.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}
