package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

type ProposalsHandler struct {
	proposals *services.ProposalService
}

func NewProposalsHandler(proposals *services.ProposalService) *ProposalsHandler {
	return &ProposalsHandler{proposals: proposals}
}

func (h *ProposalsHandler) CreateProposal(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	var req models.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.proposals.CreateProposal(c.Request.Context(), projectID, userID, role, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProposalsHandler) ListProjectProposals(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	resp, err := h.proposals.ListProjectProposals(c.Request.Context(), projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProposalsHandler) ListMyProposals(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.proposals.ListMyProposals(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
