package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Mobile          string `json:"mobile" validate:"omitempty,is-mobile"`
	Gender          string `json:"gender" validate:"omitempty,is-gender"`
	Birthdate       string `json:"birthdate" validate:"omitempty,min-age=13"`
}

func validPayload() signupPayload {
	return signupPayload{
		Email:           "user@test.com",
		Password:        "password-123",
		ConfirmPassword: "password-123",
		Mobile:          "+77001234567",
		Gender:          "Female",
		Birthdate:       "1990-05-20",
	}
}

func asValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return validationErr
}

func TestValidPayloadPasses(t *testing.T) {
	v := New()
	payload := validPayload()
	assert.NoError(t, v.Validate(payload))
}

func TestErrorsUseJSONFieldNames(t *testing.T) {
	v := New()
	payload := validPayload()
	payload.ConfirmPassword = "something-else"

	validationErr := asValidationError(t, v.Validate(payload))
	assert.Contains(t, validationErr.Errors, "confirmPassword")
	assert.NotContains(t, validationErr.Errors, "ConfirmPassword")
	assert.Equal(t, "Must match the other field", validationErr.Errors["confirmPassword"])
}

func TestMobileRule(t *testing.T) {
	v := New()

	for _, mobile := range []string{"+77001234567", "87001234567", "1234567890"} {
		payload := validPayload()
		payload.Mobile = mobile
		assert.NoError(t, v.Validate(payload), "mobile %q should be accepted", mobile)
	}

	for _, mobile := range []string{"not-a-number", "+123", "123456789012345678", "7700 123 4567"} {
		payload := validPayload()
		payload.Mobile = mobile
		validationErr := asValidationError(t, v.Validate(payload))
		assert.Equal(t, "Must be a valid mobile number", validationErr.Errors["mobile"])
	}
}

func TestGenderRuleIsCaseInsensitive(t *testing.T) {
	v := New()

	for _, gender := range []string{"male", "Male", "FEMALE", "other"} {
		payload := validPayload()
		payload.Gender = gender
		assert.NoError(t, v.Validate(payload), "gender %q should be accepted", gender)
	}

	payload := validPayload()
	payload.Gender = "robot"
	validationErr := asValidationError(t, v.Validate(payload))
	assert.Contains(t, validationErr.Errors, "gender")
}

func TestMinAgeRule(t *testing.T) {
	v := New()

	// На день рождения возраст уже достигнут
	payload := validPayload()
	payload.Birthdate = time.Now().AddDate(-13, 0, 0).Format("2006-01-02")
	assert.NoError(t, v.Validate(payload))

	payload.Birthdate = time.Now().AddDate(-13, 0, 1).Format("2006-01-02")
	validationErr := asValidationError(t, v.Validate(payload))
	assert.Equal(t, "Must be at least 13 years old", validationErr.Errors["birthdate"])

	payload.Birthdate = "20.05.1990"
	validationErr = asValidationError(t, v.Validate(payload))
	assert.Contains(t, validationErr.Errors, "birthdate")
}

func TestCategoryTypeRule(t *testing.T) {
	v := New()

	type categoryPayload struct {
		Type string `json:"type" validate:"required,is-category-type"`
	}

	assert.NoError(t, v.Validate(categoryPayload{Type: "Service"}))
	assert.NoError(t, v.Validate(categoryPayload{Type: "Business"}))

	validationErr := asValidationError(t, v.Validate(categoryPayload{Type: "Parking"}))
	assert.Contains(t, validationErr.Errors, "type")
}
