package email

import "sync"

// MockMailer собирает письма в память. Используется в тестах и в dev-режиме
// без настроенного SMTP.
type MockMailer struct {
	mu   sync.Mutex
	Sent []*Email

	// ConfirmationTokens и ResetTokens хранят последние токены по адресату
	ConfirmationTokens map[string]string
	ResetTokens        map[string]string

	FailNext error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		ConfirmationTokens: make(map[string]string),
		ResetTokens:        make(map[string]string),
	}
}

func (m *MockMailer) SendConfirmation(to, hostname, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	m.ConfirmationTokens[to] = token
	m.Sent = append(m.Sent, &Email{To: []string{to}, Subject: "Подтверждение почты"})
	return nil
}

func (m *MockMailer) SendPasswordReset(to, hostname, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	m.ResetTokens[to] = token
	m.Sent = append(m.Sent, &Email{To: []string{to}, Subject: "Сброс пароля"})
	return nil
}

func (m *MockMailer) SendBusinessDecision(to string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, &Email{To: []string{to}})
	return nil
}

func (m *MockMailer) Send(msg *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

func (m *MockMailer) Validate() error { return nil }
