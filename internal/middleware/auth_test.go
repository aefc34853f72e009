package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/email"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services"
	"servhub_backend/pkg/contextkeys"
)

type staticStore struct {
	client *models.Client
}

func (s *staticStore) FindByID(id string) (models.Account, error) {
	if s.client != nil && s.client.ID == id {
		return s.client, nil
	}
	return nil, repositories.ErrAccountNotFound
}

func (s *staticStore) FindByEmail(mail string) (models.Account, error) {
	if s.client != nil && s.client.Email == mail {
		return s.client, nil
	}
	return nil, repositories.ErrAccountNotFound
}

func (s *staticStore) Create(account models.Account) error { return nil }
func (s *staticStore) Save(account models.Account) error   { return nil }

type memLedger struct {
	revoked map[string]time.Time
}

func (l *memLedger) Record(token string, expiresAt time.Time) error {
	l.revoked[token] = expiresAt
	return nil
}

func (l *memLedger) IsInvalidated(token string) (bool, error) {
	_, ok := l.revoked[token]
	return ok, nil
}

func (l *memLedger) DeleteExpired() (int64, error) { return 0, nil }

func setupAuthTest(t *testing.T) (*gin.Engine, *auth.Signer, *models.Client, *memLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := &models.Client{
		Credentials: models.Credentials{Email: "user@test.com", PasswordHash: "x"},
		State:       models.AccountStatusConfirmed,
	}
	client.ID = "client-1"

	signer := auth.NewSigner("middleware-test-secret")
	ledger := &memLedger{revoked: make(map[string]time.Time)}
	authService := services.NewAuthService(
		&staticStore{client: client},
		signer,
		ledger,
		email.NewMockMailer(),
		services.TokenTTLs{Login: time.Hour, Confirm: time.Hour, Reset: time.Hour},
		"http://localhost:3000",
	)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"accountID": c.GetString(contextkeys.AccountIDKey),
			"email":     c.GetString(contextkeys.AccountEmailKey),
			"kind":      c.GetString(contextkeys.AccountKindKey),
		})
	})

	return router, signer, client, ledger
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func issueLogin(t *testing.T, signer *auth.Signer, client *models.Client, ttl time.Duration) string {
	t.Helper()
	token, err := signer.Issue(client.ID, client.Email, auth.PurposeLogin, ttl)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, signer, client, _ := setupAuthTest(t)
	token := issueLogin(t, signer, client, time.Hour)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accountID":"client-1"`)
	assert.Contains(t, w.Body.String(), `"kind":"client"`)
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	router, _, _, _ := setupAuthTest(t)

	for _, header := range []string{"", "token-without-scheme", "Basic abc"} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusBadRequest, w.Code, "header %q must be rejected", header)
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	router, signer, client, ledger := setupAuthTest(t)
	token := issueLogin(t, signer, client, time.Hour)

	require.NoError(t, ledger.Record(token, time.Now().Add(time.Hour)))

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddlewareRejectsNonLoginPurpose(t *testing.T) {
	router, signer, client, _ := setupAuthTest(t)

	token, err := signer.Issue(client.ID, client.Email, auth.PurposeConfirmEmail, time.Hour)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddlewareRejectsTokenBeforePasswordChange(t *testing.T) {
	router, signer, client, _ := setupAuthTest(t)
	token := issueLogin(t, signer, client, time.Hour)

	changed := time.Now().Add(time.Minute).Truncate(time.Second)
	client.PasswordChangeDate = &changed

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
