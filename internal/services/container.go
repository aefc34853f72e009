package services

// ServiceContainer собирает все сервисы приложения в одном месте,
// чтобы инициализация и обработчики не таскали длинные списки зависимостей.
type ServiceContainer struct {
	ClientAuth   *ClientAuthService
	BusinessAuth *BusinessAuthService
	AdminAuth    *AuthService

	Business *BusinessService
	Catalog  *CatalogService
	Visitor  *VisitorService
	Review   *ReviewService
	Booking  *BookingService
	Admin    *AdminService
	Profile  *ProfileService
}
