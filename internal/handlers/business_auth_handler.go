package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BusinessAuthHandler struct {
	*BaseHandler
	authService *services.BusinessAuthService
}

func NewBusinessAuthHandler(base *BaseHandler, authService *services.BusinessAuthService) *BusinessAuthHandler {
	return &BusinessAuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *BusinessAuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	businessAuth := rg.Group("/business/auth")
	{
		businessAuth.POST("/unverified/signup", h.Signup)
		businessAuth.POST("/verified/confirm/:token", h.CompleteSignup)
		businessAuth.POST("/confirmation/send", h.ResendConfirmation)
		businessAuth.POST("/confirmation/:token/confirm", h.Confirm)
		businessAuth.POST("/login", h.Login)
		businessAuth.POST("/forgot", h.Forgot)
		businessAuth.POST("/reset", h.Reset)
		businessAuth.POST("/logout", authRequired, h.Logout)
	}
}

func (h *BusinessAuthHandler) Signup(c *gin.Context) {
	var req dto.BusinessSignupRequest
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

func (h *BusinessAuthHandler) CompleteSignup(c *gin.Context) {
	var req dto.BusinessConfirmRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.CompleteSignup(c.Param("token"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BusinessAuthHandler) ResendConfirmation(c *gin.Context) {
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

func (h *BusinessAuthHandler) Confirm(c *gin.Context) {
	resp, err := h.authService.Confirm(c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BusinessAuthHandler) Login(c *gin.Context) {
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

func (h *BusinessAuthHandler) Forgot(c *gin.Context) {
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

func (h *BusinessAuthHandler) Reset(c *gin.Context) {
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

func (h *BusinessAuthHandler) Logout(c *gin.Context) {
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
