package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

type ReviewsHandler struct {
	reviews *services.ReviewService
}

func NewReviewsHandler(reviews *services.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

func (h *ReviewsHandler) CreateReview(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.reviews.CreateReview(c.Request.Context(), projectID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewsHandler) ListProjectReviews(c *gin.Context) {
	if _, _, ok := principal(c); !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	resp, err := h.reviews.ListProjectReviews(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
