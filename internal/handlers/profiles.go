package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

// maxPortfolioImageSize caps portfolio uploads at 10 MB.
const maxPortfolioImageSize = 10 << 20

type ProfilesHandler struct {
	profiles *services.ProfileService
}

func NewProfilesHandler(profiles *services.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles}
}

func (h *ProfilesHandler) UpsertProfile(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleArtisan) {
		return
	}

	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.profiles.UpsertProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	requesterID, _, ok := principal(c)
	if !ok {
		return
	}
	profileUserID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.profiles.GetProfile(c.Request.Context(), profileUserID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfilesHandler) AddSpecializations(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleArtisan) {
		return
	}

	var req models.AddSpecializationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	specs, err := h.profiles.AddSpecializations(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specializations": specs})
}

func (h *ProfilesHandler) RemoveSpecialization(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleArtisan) {
		return
	}
	specializationID, ok := parseUUIDParam(c, "specialization_id")
	if !ok {
		return
	}

	if err := h.profiles.RemoveSpecialization(c.Request.Context(), userID, specializationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "specialization removed"})
}

func (h *ProfilesHandler) UploadPortfolioImage(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleArtisan) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorBody{Code: "BAD_REQUEST", Message: "file is required"},
		})
		return
	}
	if fileHeader.Size > maxPortfolioImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorBody{Code: "BAD_REQUEST", Message: "file exceeds the 10MB limit"},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.profiles.UploadPortfolioImage(
		c.Request.Context(), userID, fileHeader.Filename, data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfilesHandler) DeletePortfolioImage(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleArtisan) {
		return
	}
	imageID, ok := parseUUIDParam(c, "image_id")
	if !ok {
		return
	}

	if err := h.profiles.DeletePortfolioImage(c.Request.Context(), userID, imageID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "portfolio image deleted"})
}
