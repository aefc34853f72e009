// Package messages содержит все видимые пользователю строки API.
// Сообщения собраны в одном месте, чтобы обработчики, сервисы и тесты
// ссылались на один и тот же текст.
package messages

// AuthErrors - ошибки потоков аутентификации.
// InvalidToken намеренно один на все причины отказа (подпись, срок,
// watermark, ledger), чтобы не раскрывать состояние аккаунта.
var AuthErrors = struct {
	InvalidCredentials string
	InvalidToken       string
	AccountExists      string
	Unauthorized       string
	AlreadyConfirmed   string
	AccountBanned      string
	PasswordMismatch   string
}{
	InvalidCredentials: "Invalid email or password.",
	InvalidToken:       "Invalid or expired token.",
	AccountExists:      "An account with this email already exists.",
	Unauthorized:       "Authentication required.",
	AlreadyConfirmed:   "This account is already confirmed.",
	AccountBanned:      "This account is banned.",
	PasswordMismatch:   "Passwords do not match.",
}

// AuthSuccess - успешные ответы потоков аутентификации
var AuthSuccess = struct {
	Signup            string
	EmailConfirmation string
	Confirmed         string
	CheckYourEmail    string
	PasswordReset     string
	LoggedOut         string
}{
	Signup:            "Signup successful. Please check your email to confirm your account.",
	EmailConfirmation: "A confirmation email has been sent.",
	Confirmed:         "Account confirmed successfully.",
	CheckYourEmail:    "If the email exists, a reset link has been sent. Check your email.",
	PasswordReset:     "Password has been reset successfully.",
	LoggedOut:         "Logged out successfully.",
}

// BusinessMessages - ошибки бизнес-роутеров
var BusinessMessages = struct {
	BusinessDoesntExist string
	BranchDoesntExist   string
	MismatchID          string
	PendingApproval     string
}{
	BusinessDoesntExist: "Business does not exist.",
	BranchDoesntExist:   "Branch does not exist.",
	MismatchID:          "You can only act on your own business.",
	PendingApproval:     "Signup received. An administrator will review your application.",
}

// BusinessSuccess - успешные ответы бизнес-роутеров
var BusinessSuccess = struct {
	InfoEdit     string
	BranchAdded  string
	BranchEdit   string
	BranchDelete string
}{
	InfoEdit:     "Business information updated successfully.",
	BranchAdded:  "Branches added successfully.",
	BranchEdit:   "Branch updated successfully.",
	BranchDelete: "Branch deleted successfully.",
}

// CatalogErrors - ошибки каталога услуг
var CatalogErrors = struct {
	InvalidService   string
	InvalidOffering  string
	InvalidBranch    string
	InvalidCategory  string
	InvalidOperation string
}{
	InvalidService:   "Service does not exist.",
	InvalidOffering:  "Offering does not exist.",
	InvalidBranch:    "Branch does not belong to this business.",
	InvalidCategory:  "One or more categories are invalid.",
	InvalidOperation: "You do not own this resource.",
}

// CatalogSuccess - успешные ответы каталога услуг
var CatalogSuccess = struct {
	ServiceAdded    string
	ServiceEdited   string
	ServiceDeleted  string
	OfferingAdded   string
	OfferingEdited  string
	OfferingDeleted string
}{
	ServiceAdded:    "Service added successfully.",
	ServiceEdited:   "Service updated successfully.",
	ServiceDeleted:  "Service deleted successfully.",
	OfferingAdded:   "Offering added successfully.",
	OfferingEdited:  "Offering updated successfully.",
	OfferingDeleted: "Offering deleted successfully.",
}

// VisitorErrors - ошибки публичных роутеров
var VisitorErrors = struct {
	NoRelatedServices string
	ServiceNotFound   string
}{
	NoRelatedServices: "No related services found.",
	ServiceNotFound:   "Service not found.",
}

// ReviewMessages - отзывы
var ReviewMessages = struct {
	Added         string
	Edited        string
	Deleted       string
	AlreadyExists string
	NotFound      string
}{
	Added:         "Review added successfully.",
	Edited:        "Review updated successfully.",
	Deleted:       "Review deleted successfully.",
	AlreadyExists: "You have already reviewed this service.",
	NotFound:      "Review not found.",
}

// BookingMessages - бронирования
var BookingMessages = struct {
	Made            string
	InvalidOffering string
}{
	Made:            "Booking made successfully.",
	InvalidOffering: "Offering does not belong to this service.",
}

// AdminMessages - модерация
var AdminMessages = struct {
	BusinessConfirmed string
	BusinessDenied    string
	BusinessNotFound  string
	ClientNotFound    string
	CategoryAdded     string
	CategoryEdited    string
	CategoryDeleted   string
	CategoryNotFound  string
	AccountDeleted    string
}{
	BusinessConfirmed: "Business application confirmed.",
	BusinessDenied:    "Business application denied.",
	BusinessNotFound:  "Business not found.",
	ClientNotFound:    "Client not found.",
	CategoryAdded:     "Category added successfully.",
	CategoryEdited:    "Category updated successfully.",
	CategoryDeleted:   "Category deleted successfully.",
	CategoryNotFound:  "Category not found.",
	AccountDeleted:    "Account deleted successfully.",
}

// ProfileMessages - профиль клиента
var ProfileMessages = struct {
	InfoEdit string
}{
	InfoEdit: "Profile updated successfully.",
}
