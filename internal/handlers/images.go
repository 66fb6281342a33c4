package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

type ImagesHandler struct {
	images *services.ImageService
}

func NewImagesHandler(images *services.ImageService) *ImagesHandler {
	return &ImagesHandler{images: images}
}

func (h *ImagesHandler) RegisterImage(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}

	var req models.RegisterImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.images.RegisterImage(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ImagesHandler) ListMyImages(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}

	images, err := h.images.ListMyImages(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}
