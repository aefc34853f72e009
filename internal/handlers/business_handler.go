package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// BusinessHandler - профиль бизнеса и филиалы
type BusinessHandler struct {
	*BaseHandler
	businessService *services.BusinessService
}

func NewBusinessHandler(base *BaseHandler, businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:     base,
		businessService: businessService,
	}
}

func (h *BusinessHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	business := rg.Group("/business")
	{
		// Публичная страница бизнеса
		business.GET("/info/:id", h.Get)

		info := business.Group("/info", authRequired)
		{
			info.PUT("/edit", h.EditInfo)
			info.POST("/branch", h.AddBranch)
			info.PUT("/branch/:branchId", h.EditBranch)
			info.DELETE("/branch/:branchId", h.DeleteBranch)
		}
	}
}

func (h *BusinessHandler) Get(c *gin.Context) {
	business, err := h.businessService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}

func (h *BusinessHandler) EditInfo(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.BusinessInfoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.businessService.EditInfo(businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BusinessHandler) AddBranch(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.BranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.businessService.AddBranch(businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BusinessHandler) EditBranch(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.BranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.businessService.EditBranch(businessID, c.Param("branchId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BusinessHandler) DeleteBranch(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	resp, err := h.businessService.DeleteBranch(businessID, c.Param("branchId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
