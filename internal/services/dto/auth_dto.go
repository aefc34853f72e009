package dto

// --- Запросы ---

type ClientSignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName" validate:"required,max=50"`
	LastName        string `json:"lastName" validate:"required,max=50"`
	Mobile          string `json:"mobile" validate:"required,is-mobile"`
	Gender          string `json:"gender" validate:"required,is-gender"`
	Birthdate       string `json:"birthdate" validate:"required,min-age=13"`
}

type BusinessSignupRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name             string `json:"name" validate:"required,max=100"`
	ShortDescription string `json:"shortDescription" validate:"required,max=140"`
	PhoneNumbers     string `json:"phoneNumbers" validate:"required"`
}

// BusinessConfirmRequest - завершение регистрации одобренного бизнеса:
// по ссылке из письма модерации бизнес задаёт пароль и заполняет профиль.
type BusinessConfirmRequest struct {
	Password        string          `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string          `json:"confirmPassword" validate:"required,eqfield=Password"`
	Description     string          `json:"description" validate:"max=2000"`
	WorkingHours    string          `json:"workingHours" validate:"max=200"`
	CategoryIDs     []string        `json:"categories" validate:"dive,uuid"`
	Branches        []BranchRequest `json:"branches" validate:"dive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// --- Ответы ---

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"id"`
	Email   string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
