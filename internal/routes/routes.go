package routes

import (
	"servhub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// AuthMiddlewares - обёртки аутентификации по видам аккаунтов.
// У каждого вида свой секрет и своё хранилище, поэтому middleware три.
type AuthMiddlewares struct {
	Client   gin.HandlerFunc
	Business gin.HandlerFunc
	Admin    gin.HandlerFunc
}

// Setup регистрирует все маршруты API под /api/v1
func Setup(r *gin.Engine, h *handlers.AppHandlers, authMW AuthMiddlewares) {
	api := r.Group("/api/v1")

	h.ClientAuthHandler.RegisterRoutes(api, authMW.Client)
	h.BusinessAuthHandler.RegisterRoutes(api, authMW.Business)
	h.AdminHandler.RegisterRoutes(api, authMW.Admin)

	h.BusinessHandler.RegisterRoutes(api, authMW.Business)
	h.CatalogHandler.RegisterRoutes(api, authMW.Business)
	h.VisitorHandler.RegisterRoutes(api)
	h.ReviewHandler.RegisterRoutes(api, authMW.Client)
	h.ProfileHandler.RegisterRoutes(api, authMW.Client)
}
