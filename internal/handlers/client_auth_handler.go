package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClientAuthHandler struct {
	*BaseHandler
	authService *services.ClientAuthService
}

func NewClientAuthHandler(base *BaseHandler, authService *services.ClientAuthService) *ClientAuthHandler {
	return &ClientAuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации клиента.
// authRequired защищает только logout: остальные потоки либо публичные,
// либо несут собственный токен в теле/пути запроса.
func (h *ClientAuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	clientAuth := rg.Group("/client/auth")
	{
		clientAuth.POST("/signup", h.Signup)
		clientAuth.POST("/confirmation/send", h.ResendConfirmation)
		clientAuth.POST("/confirmation/:token/confirm", h.Confirm)
		clientAuth.POST("/login", h.Login)
		clientAuth.POST("/forgot", h.Forgot)
		clientAuth.POST("/reset", h.Reset)
		clientAuth.POST("/logout", authRequired, h.Logout)
	}
}

func (h *ClientAuthHandler) Signup(c *gin.Context) {
	var req dto.ClientSignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ClientAuthHandler) ResendConfirmation(c *gin.Context) {
	var req dto.ResendConfirmationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.ResendConfirmation(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientAuthHandler) Confirm(c *gin.Context) {
	resp, err := h.authService.Confirm(c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientAuthHandler) Login(c *gin.Context) {
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

func (h *ClientAuthHandler) Forgot(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Forgot(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientAuthHandler) Reset(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Reset(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientAuthHandler) Logout(c *gin.Context) {
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
