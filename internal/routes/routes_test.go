package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"servhub_backend/internal/handlers"
	"servhub_backend/internal/validator"
)

// Таблица маршрутов фиксируется тестом: хэндлеры здесь не вызываются,
// поэтому сервисы им не нужны.
func TestSetupRegistersRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	base := handlers.NewBaseHandler(validator.New())
	h := &handlers.AppHandlers{
		ClientAuthHandler:   handlers.NewClientAuthHandler(base, nil),
		BusinessAuthHandler: handlers.NewBusinessAuthHandler(base, nil),
		AdminHandler:        handlers.NewAdminHandler(base, nil, nil),
		BusinessHandler:     handlers.NewBusinessHandler(base, nil),
		CatalogHandler:      handlers.NewCatalogHandler(base, nil),
		VisitorHandler:      handlers.NewVisitorHandler(base, nil),
		ReviewHandler:       handlers.NewReviewHandler(base, nil),
		ProfileHandler:      handlers.NewProfileHandler(base, nil, nil, nil),
	}

	r := gin.New()
	noop := func(c *gin.Context) {}
	Setup(r, h, AuthMiddlewares{Client: noop, Business: noop, Admin: noop})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/client/auth/signup",
		"POST /api/v1/client/auth/confirmation/send",
		"POST /api/v1/client/auth/confirmation/:token/confirm",
		"POST /api/v1/client/auth/login",
		"POST /api/v1/client/auth/forgot",
		"POST /api/v1/client/auth/reset",
		"POST /api/v1/client/auth/logout",

		"POST /api/v1/business/auth/unverified/signup",
		"POST /api/v1/business/auth/verified/confirm/:token",
		"POST /api/v1/business/auth/confirmation/:token/confirm",
		"POST /api/v1/business/auth/login",

		"POST /api/v1/admin/auth/login",
		"GET /api/v1/admin/business/pending",
		"POST /api/v1/admin/business/:id/confirm",
		"POST /api/v1/admin/business/:id/deny",

		"GET /api/v1/business/info/:id",
		"PUT /api/v1/business/info/edit",
		"PUT /api/v1/business/info/branch/:branchId",
		"DELETE /api/v1/business/info/branch/:branchId",

		"GET /api/v1/business/service",
		"POST /api/v1/business/service/create",
		"POST /api/v1/business/service/:serviceId/offering/create",

		"GET /api/v1/visitor/toprated",
		"GET /api/v1/visitor/category/:categoryId/services",
		"GET /api/v1/visitor/service/:serviceId",

		"GET /api/v1/service/:serviceId/reviews",
		"POST /api/v1/service/:serviceId/reviews",

		"GET /api/v1/client/bookings",
		"POST /api/v1/client/bookings",
		"PUT /api/v1/client/profile/edit",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "route not registered: %s", want)
	}
}
