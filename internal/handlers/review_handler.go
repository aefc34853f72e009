package handlers

import (
	"net/http"

	"servhub_backend/internal/services"
	"servhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ReviewHandler - отзывы об услугах. Чтение публичное, мутации
// требуют клиентский токен.
type ReviewHandler struct {
	*BaseHandler
	reviewService *services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, clientAuth gin.HandlerFunc) {
	reviews := rg.Group("/service/:serviceId/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", clientAuth, h.Add)
		reviews.PUT("/:reviewId", clientAuth, h.Edit)
		reviews.DELETE("/:reviewId", clientAuth, h.Delete)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Param("serviceId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) Add(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Add(clientID, c.Param("serviceId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) Edit(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Edit(clientID, c.Param("serviceId"), c.Param("reviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	resp, err := h.reviewService.Delete(clientID, c.Param("serviceId"), c.Param("reviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
