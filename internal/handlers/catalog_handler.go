package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler - услуги и предложения бизнеса.
// Все маршруты требуют бизнес-токен; владение проверяет сервис.
type CatalogHandler struct {
	*BaseHandler
	catalogService *services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	catalog := rg.Group("/business/service", authRequired)
	{
		catalog.GET("", h.ListOwn)
		catalog.POST("/create", h.CreateService)
		catalog.PUT("/:serviceId/edit", h.EditService)
		catalog.DELETE("/:serviceId/delete", h.DeleteService)

		catalog.POST("/:serviceId/offering/create", h.CreateOffering)
		catalog.PUT("/:serviceId/offering/:offeringId/edit", h.EditOffering)
		catalog.DELETE("/:serviceId/offering/:offeringId/delete", h.DeleteOffering)
	}
}

func (h *CatalogHandler) ListOwn(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	list, err := h.catalogService.ListOwn(businessID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalogService.CreateService(businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) EditService(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalogService.EditService(businessID, c.Param("serviceId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	resp, err := h.catalogService.DeleteService(businessID, c.Param("serviceId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateOffering(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.OfferingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalogService.CreateOffering(businessID, c.Param("serviceId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) EditOffering(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.OfferingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalogService.EditOffering(businessID, c.Param("serviceId"), c.Param("offeringId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) DeleteOffering(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	resp, err := h.catalogService.DeleteOffering(businessID, c.Param("serviceId"), c.Param("offeringId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
