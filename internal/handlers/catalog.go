package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chairai-backend/internal/logger"
	"chairai-backend/internal/models"
)

type CatalogStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
}

// CatalogHandler serves the static lookup tables used by project and profile
// forms. No service layer in between, the lists are read-only.
type CatalogHandler struct {
	store CatalogStore
}

func NewCatalogHandler(store CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		h.internalError(c, "categories", err)
		return
	}

	out := make([]models.CatalogItemResponse, len(categories))
	for i, cat := range categories {
		out[i] = models.CatalogItemResponse{ID: cat.ID.String(), Name: cat.Name}
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	materials, err := h.store.ListMaterials(c.Request.Context())
	if err != nil {
		h.internalError(c, "materials", err)
		return
	}

	out := make([]models.CatalogItemResponse, len(materials))
	for i, m := range materials {
		out[i] = models.CatalogItemResponse{ID: m.ID.String(), Name: m.Name}
	}
	c.JSON(http.StatusOK, gin.H{"materials": out})
}

func (h *CatalogHandler) ListSpecializations(c *gin.Context) {
	specs, err := h.store.ListSpecializations(c.Request.Context())
	if err != nil {
		h.internalError(c, "specializations", err)
		return
	}

	out := make([]models.CatalogItemResponse, len(specs))
	for i, s := range specs {
		out[i] = models.CatalogItemResponse{ID: s.ID.String(), Name: s.Name}
	}
	c.JSON(http.StatusOK, gin.H{"specializations": out})
}

func (h *CatalogHandler) internalError(c *gin.Context, table string, err error) {
	logger.L().Error("catalog query failed", zap.String("table", table), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorBody{Code: "INTERNAL_ERROR", Message: "failed to load " + table},
	})
}
