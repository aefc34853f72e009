package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	ClientAuthHandler   *ClientAuthHandler
	BusinessAuthHandler *BusinessAuthHandler
	AdminHandler        *AdminHandler
	BusinessHandler     *BusinessHandler
	CatalogHandler      *CatalogHandler
	VisitorHandler      *VisitorHandler
	ReviewHandler       *ReviewHandler
	ProfileHandler      *ProfileHandler
}
