package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler - профиль клиента и его бронирования
type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
	bookingService *services.BookingService
	authService    *services.ClientAuthService
}

func NewProfileHandler(
	base *BaseHandler,
	profileService *services.ProfileService,
	bookingService *services.BookingService,
	authService *services.ClientAuthService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		bookingService: bookingService,
		authService:    authService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, clientAuth gin.HandlerFunc) {
	profile := rg.Group("/client/profile", clientAuth)
	{
		profile.GET("", h.Get)
		profile.PUT("/edit", h.Edit)
		profile.PUT("/password", h.ChangePassword)
	}

	bookings := rg.Group("/client/bookings", clientAuth)
	{
		bookings.GET("", h.History)
		bookings.POST("", h.Book)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	client, err := h.profileService.Get(clientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

func (h *ProfileHandler) Edit(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.EditProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.profileService.Edit(clientID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.ChangePassword(clientID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) History(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	page := ParseQueryInt(c, "page", 1)

	resp, err := h.bookingService.History(clientID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Book(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.BookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.bookingService.Make(clientID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
