package services

import (
	"errors"
	"time"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/email"
	"servhub_backend/internal/logger"
	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// TokenTTLs - сроки жизни токенов по назначениям
type TokenTTLs struct {
	Login   time.Duration
	Confirm time.Duration
	Reset   time.Duration
}

// AuthService реализует общие потоки аутентификации для одного вида
// аккаунтов. Вид задаётся хранилищем и подписантом: клиентский экземпляр
// собирается из ClientRepository и клиентского секрета, и так далее.
//
// Регистрация у каждого вида своя (см. ClientAuthService и
// BusinessAuthService), остальные потоки общие.
type AuthService struct {
	store    repositories.CredentialStore
	signer   *auth.Signer
	ledger   repositories.InvalidatedTokenRepository
	mailer   email.Mailer
	ttls     TokenTTLs
	hostname string
}

func NewAuthService(
	store repositories.CredentialStore,
	signer *auth.Signer,
	ledger repositories.InvalidatedTokenRepository,
	mailer email.Mailer,
	ttls TokenTTLs,
	hostname string,
) *AuthService {
	return &AuthService{
		store:    store,
		signer:   signer,
		ledger:   ledger,
		mailer:   mailer,
		ttls:     ttls,
		hostname: hostname,
	}
}

// Login проверяет учетные данные и выдаёт login-токен.
// Несуществующая почта и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.Creds().PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.signer.Issue(account.AccountID(), account.Creds().Email, auth.PurposeLogin, s.ttls.Login)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("account logged in", "account_id", account.AccountID(), "kind", account.Kind())

	return &dto.TokenResponse{
		Message: "Login successful.",
		Token:   token,
		ID:      account.AccountID(),
		Email:   account.Creds().Email,
	}, nil
}

// Logout заносит предъявленный login-токен в журнал отозванных.
// Токен уже прошёл middleware, но мы валидируем повторно, чтобы достать
// срок действия для записи журнала.
func (s *AuthService) Logout(token string) (*dto.MessageResponse, error) {
	claims, err := s.signer.Verify(token, auth.PurposeLogin)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.ledger.Record(token, claims.ExpiresAt.Time); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("account logged out", "account_id", claims.Subject)

	return &dto.MessageResponse{Message: messages.AuthSuccess.LoggedOut}, nil
}

// ResendConfirmation перевыпускает токен подтверждения почты.
// Выпуск сдвигает watermark: все прежние confirm-токены аккаунта гаснут.
func (s *AuthService) ResendConfirmation(emailAddr string) (*dto.MessageResponse, error) {
	account, err := s.store.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if account.Status() == models.AccountStatusConfirmed {
		return nil, apperrors.ErrAlreadyConfirmed
	}
	if account.Status() == models.AccountStatusBanned {
		return nil, apperrors.ErrAccountBanned
	}

	if err := s.sendConfirmation(account); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: messages.AuthSuccess.EmailConfirmation}, nil
}

// Confirm подтверждает почту по confirm-токену. Токен одноразовый:
// использованный заносится в журнал отозванных и повторно не принимается.
func (s *AuthService) Confirm(token string) (*dto.MessageResponse, error) {
	claims, err := s.signer.Verify(token, auth.PurposeConfirmEmail)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.store.FindByID(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if account.Status() == models.AccountStatusConfirmed {
		return nil, apperrors.ErrAlreadyConfirmed
	}
	if account.Status() == models.AccountStatusBanned {
		return nil, apperrors.ErrAccountBanned
	}

	revoked, err := s.ledger.IsInvalidated(token)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if revoked {
		return nil, apperrors.ErrInvalidToken
	}

	if !auth.IssuedAtOnOrAfter(claims, account.Creds().ConfirmationTokenDate) {
		return nil, apperrors.ErrInvalidToken
	}

	account.SetStatus(models.AccountStatusConfirmed)
	account.Creds().ConfirmationTokenDate = nil
	if err := s.store.Save(account); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.ledger.Record(token, claims.ExpiresAt.Time); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("email confirmed", "account_id", account.AccountID())

	return &dto.MessageResponse{Message: messages.AuthSuccess.Confirmed}, nil
}

// Forgot запускает сброс пароля. Ответ одинаков для существующей и
// несуществующей почты, чтобы не раскрывать базу адресов.
func (s *AuthService) Forgot(emailAddr string) (*dto.MessageResponse, error) {
	resp := &dto.MessageResponse{Message: messages.AuthSuccess.CheckYourEmail}

	account, err := s.store.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return resp, nil
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.signer.Issue(account.AccountID(), account.Creds().Email, auth.PurposeResetPassword, s.ttls.Reset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	claims, _ := s.signer.Verify(token, auth.PurposeResetPassword)
	issuedAt := claims.IssuedAt.Time
	account.Creds().PasswordResetTokenDate = &issuedAt
	if err := s.store.Save(account); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendPasswordReset(account.Creds().Email, s.hostname, token); err != nil {
		// Письмо не ушло, но наружу отдаём тот же ответ
		logger.Error("failed to send password reset email", "error", err, "account_id", account.AccountID())
	}

	return resp, nil
}

// Reset меняет пароль по reset-токену.
// Токен обязан быть выпущен не раньше обеих меток: последнего запроса
// сброса и последней смены пароля. Использованный токен гаснет, потому
// что успешный сброс снимает PasswordResetTokenDate.
func (s *AuthService) Reset(req *dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	claims, err := s.signer.Verify(req.Token, auth.PurposeResetPassword)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.store.FindByID(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	creds := account.Creds()
	if creds.PasswordResetTokenDate == nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !auth.IssuedAtOnOrAfter(claims, creds.PasswordResetTokenDate) {
		return nil, apperrors.ErrInvalidToken
	}
	if !auth.IssuedAtOnOrAfter(claims, creds.PasswordChangeDate) {
		return nil, apperrors.ErrInvalidToken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now().Truncate(time.Second)
	creds.PasswordHash = hash
	creds.PasswordResetTokenDate = nil
	creds.PasswordChangeDate = &now
	if err := s.store.Save(account); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("password reset", "account_id", account.AccountID())

	return &dto.MessageResponse{Message: messages.AuthSuccess.PasswordReset}, nil
}

// ChangePassword меняет пароль аутентифицированного аккаунта.
// Смена сдвигает PasswordChangeDate: все ранее выданные login-токены гаснут.
func (s *AuthService) ChangePassword(accountID string, req *dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	account, err := s.store.FindByID(accountID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if !auth.CheckPasswordHash(req.OldPassword, account.Creds().PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now().Truncate(time.Second)
	account.Creds().PasswordHash = hash
	account.Creds().PasswordChangeDate = &now
	if err := s.store.Save(account); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.AuthSuccess.PasswordReset}, nil
}

// Authenticate проверяет login-токен и возвращает аккаунт.
// Используется middleware: подпись, журнал отзыва и watermark смены
// пароля проверяются здесь одним местом.
func (s *AuthService) Authenticate(token string) (models.Account, *auth.Claims, error) {
	claims, err := s.signer.Verify(token, auth.PurposeLogin)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.ledger.IsInvalidated(token)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	if revoked {
		return nil, nil, apperrors.ErrInvalidToken
	}

	account, err := s.store.FindByID(claims.Subject)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidToken
	}

	if !auth.IssuedAtOnOrAfter(claims, account.Creds().PasswordChangeDate) {
		return nil, nil, apperrors.ErrInvalidToken
	}

	return account, claims, nil
}

// sendConfirmation выпускает confirm-токен, двигает watermark и шлёт письмо
func (s *AuthService) sendConfirmation(account models.Account) error {
	token, err := s.signer.Issue(account.AccountID(), account.Creds().Email, auth.PurposeConfirmEmail, s.ttls.Confirm)
	if err != nil {
		return apperrors.InternalError(err)
	}

	claims, _ := s.signer.Verify(token, auth.PurposeConfirmEmail)
	issuedAt := claims.IssuedAt.Time
	account.Creds().ConfirmationTokenDate = &issuedAt
	if err := s.store.Save(account); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendConfirmation(account.Creds().Email, s.hostname, token); err != nil {
		logger.Error("failed to send confirmation email", "error", err, "account_id", account.AccountID())
	}
	return nil
}
