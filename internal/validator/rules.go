package validator

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"servhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var mobileRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-gender", validateGender)
	mustRegister("is-mobile", validateMobile)
	mustRegister("min-age", validateMinAge)
	mustRegister("is-category-type", validateCategoryType)
}

// --- Функции валидации ---

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch strings.ToLower(value) {
	case "male", "female", "other":
		return true
	default:
		return false
	}
}

func validateMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobileRegex.MatchString(value)
}

// validateMinAge проверяет дату рождения в формате 2006-01-02.
// Параметр тега задаёт минимальный возраст в годах.
func validateMinAge(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	birthdate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}

	minYears, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return !birthdate.After(time.Now().AddDate(-minYears, 0, 0))
}

func validateCategoryType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CategoryType(value) {
	case models.CategoryTypeService, models.CategoryTypeBusiness:
		return true
	default:
		return false
	}
}
