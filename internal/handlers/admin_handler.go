package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - вход администратора и все операции модерации
type AdminHandler struct {
	*BaseHandler
	authService  *services.AuthService
	adminService *services.AdminService
}

func NewAdminHandler(base *BaseHandler, authService *services.AuthService, adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		authService:  authService,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	adminAuth := rg.Group("/admin/auth")
	{
		adminAuth.POST("/login", h.Login)
		adminAuth.POST("/logout", authRequired, h.Logout)
	}

	admin := rg.Group("/admin")
	admin.Use(authRequired)
	{
		admin.GET("/business/pending", h.PendingBusinesses)
		admin.POST("/business/:id/confirm", h.ConfirmBusiness)
		admin.POST("/business/:id/deny", h.DenyBusiness)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/category", h.AddCategory)
		admin.PUT("/category/:id", h.EditCategory)
		admin.DELETE("/category/:id", h.DeleteCategory)

		admin.GET("/clients", h.ListClients)
		admin.GET("/businesses", h.ListBusinesses)
		admin.DELETE("/client/:id", h.DeleteClient)
		admin.DELETE("/business/:id", h.DeleteBusiness)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token, ok := h.GetBearerToken(c)
	if !ok {
		return
	}

	resp, err := h.authService.Logout(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) PendingBusinesses(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)

	resp, err := h.adminService.PendingBusinesses(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ConfirmBusiness(c *gin.Context) {
	resp, err := h.adminService.ConfirmBusiness(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DenyBusiness(c *gin.Context) {
	resp, err := h.adminService.DenyBusiness(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	cats, err := h.adminService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.adminService.AddCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) EditCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.adminService.EditCategory(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	resp, err := h.adminService.DeleteCategory(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)

	resp, err := h.adminService.ListClients(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListBusinesses(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)

	resp, err := h.adminService.ListBusinesses(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	resp, err := h.adminService.DeleteClient(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteBusiness(c *gin.Context) {
	resp, err := h.adminService.DeleteBusiness(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
