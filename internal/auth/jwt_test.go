package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	signer := NewSigner("test-secret")

	token, err := signer.Issue("acc-1", "user@test.com", PurposeLogin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Verify(token, PurposeLogin)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, PurposeLogin, claims.Purpose)
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	signer := NewSigner("test-secret")

	token, err := signer.Issue("acc-1", "user@test.com", PurposeConfirmEmail, time.Hour)
	require.NoError(t, err)

	_, err = signer.Verify(token, PurposeLogin)
	assert.Error(t, err)

	_, err = signer.Verify(token, PurposeResetPassword)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner("secret-a")
	other := NewSigner("secret-b")

	token, err := signer.Issue("acc-1", "user@test.com", PurposeLogin, time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token, PurposeLogin)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := NewSigner("test-secret")

	token, err := signer.Issue("acc-1", "user@test.com", PurposeLogin, -time.Minute)
	require.NoError(t, err)

	_, err = signer.Verify(token, PurposeLogin)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := NewSigner("test-secret")

	_, err := signer.Verify("not-a-token", PurposeLogin)
	assert.Error(t, err)

	_, err = signer.Verify("", PurposeLogin)
	assert.Error(t, err)
}

func TestIssuedAtOnOrAfter(t *testing.T) {
	signer := NewSigner("test-secret")

	token, err := signer.Issue("acc-1", "user@test.com", PurposeLogin, time.Hour)
	require.NoError(t, err)
	claims, err := signer.Verify(token, PurposeLogin)
	require.NoError(t, err)

	issued := claims.IssuedAt.Time

	// nil watermark пропускает любой токен
	assert.True(t, IssuedAtOnOrAfter(claims, nil))

	// Совпадающая секунда проходит: сравнение включительное
	same := issued.Truncate(time.Second)
	assert.True(t, IssuedAtOnOrAfter(claims, &same))

	// Субсекундная разница в ту же секунду не отбраковывает
	sameSecondLater := issued.Truncate(time.Second).Add(500 * time.Millisecond)
	assert.True(t, IssuedAtOnOrAfter(claims, &sameSecondLater))

	// Метка в прошлом проходит
	past := issued.Add(-time.Minute)
	assert.True(t, IssuedAtOnOrAfter(claims, &past))

	// Метка в будущем отбраковывает
	future := issued.Add(time.Minute)
	assert.False(t, IssuedAtOnOrAfter(claims, &future))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-horse", hash))
	assert.False(t, CheckPasswordHash("", hash))
}
