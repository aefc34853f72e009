package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPProvider реализует Mailer поверх SMTP
type SMTPProvider struct {
	config *SMTPConfig
	auth   smtp.Auth
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config: config,
		auth:   auth,
	}
}

func (p *SMTPProvider) SendConfirmation(to, hostname, token string) error {
	html, err := renderTemplate("confirmation", TemplateData{
		"Hostname": hostname,
		"Token":    token,
	})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		From:     p.fromAddress(),
		To:       []string{to},
		Subject:  "Подтверждение почты",
		HTMLBody: html,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, hostname, token string) error {
	html, err := renderTemplate("password_reset", TemplateData{
		"Hostname": hostname,
		"Token":    token,
	})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		From:     p.fromAddress(),
		To:       []string{to},
		Subject:  "Сброс пароля",
		HTMLBody: html,
	})
}

func (p *SMTPProvider) SendBusinessDecision(to string, approved bool) error {
	name := "business_rejected"
	subject := "Заявка отклонена"
	if approved {
		name = "business_approved"
		subject = "Бизнес подтверждён"
	}

	html, err := renderTemplate(name, TemplateData{})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		From:     p.fromAddress(),
		To:       []string{to},
		Subject:  subject,
		HTMLBody: html,
	})
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(msg *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	message := p.buildMessage(msg)
	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: p.config.Host,
		}

		dialer := &net.Dialer{Timeout: p.config.Timeout}
		conn, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to dial TLS: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, p.config.Host)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		return p.sendWithClient(client, msg, message)
	}

	return smtp.SendMail(addr, p.auth, msg.From, msg.To, message)
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

func (p *SMTPProvider) fromAddress() string {
	if p.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}
	return p.config.FromEmail
}

// buildMessage строит MIME сообщение из структуры Email
func (p *SMTPProvider) buildMessage(msg *Email) []byte {
	builder := &strings.Builder{}

	builder.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ",")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTMLBody != "" {
		builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		builder.WriteString(msg.HTMLBody)
	} else {
		builder.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		builder.WriteString(msg.Body)
	}

	return []byte(builder.String())
}

// sendWithClient отправляет сообщение используя существующий SMTP клиент
func (p *SMTPProvider) sendWithClient(client *smtp.Client, msg *Email, message []byte) error {
	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(p.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, recipient := range msg.To {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}
