package handlers

import (
	"net/http"

	"servhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// VisitorHandler - публичный просмотр каталога
type VisitorHandler struct {
	*BaseHandler
	visitorService *services.VisitorService
}

func NewVisitorHandler(base *BaseHandler, visitorService *services.VisitorService) *VisitorHandler {
	return &VisitorHandler{
		BaseHandler:    base,
		visitorService: visitorService,
	}
}

func (h *VisitorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	visitor := rg.Group("/visitor")
	{
		visitor.GET("/toprated", h.TopRated)
		visitor.GET("/category/:categoryId/services", h.Related)
		visitor.GET("/service/:serviceId", h.View)
		visitor.GET("/search", h.Search)
		visitor.GET("/categories", h.Categories)
	}
}

func (h *VisitorHandler) TopRated(c *gin.Context) {
	list, err := h.visitorService.TopRated()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

func (h *VisitorHandler) Related(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)

	resp, err := h.visitorService.Related(c.Param("categoryId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VisitorHandler) View(c *gin.Context) {
	service, err := h.visitorService.View(c.Param("serviceId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *VisitorHandler) Search(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	perPage := ParseQueryInt(c, "perPage", 10)

	resp, err := h.visitorService.Search(c.Query("q"), page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VisitorHandler) Categories(c *gin.Context) {
	cats, err := h.visitorService.Categories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
