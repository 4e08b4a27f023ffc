package handlers

import (
	"net/http"

	"raisedesk/models"
	investorService "raisedesk/services/investor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvestorHandler struct {
	Service investorService.InvestorService
}

func NewInvestorHandler(s investorService.InvestorService) *InvestorHandler {
	return &InvestorHandler{Service: s}
}

// ListInvestorsHandler handles GET /api/investors?search=&sector=&stage=&geography=.
func (h *InvestorHandler) ListInvestorsHandler(c *gin.Context) {
	var q models.InvestorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	investors, err := h.Service.ListInvestors(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to list investors")
		return
	}
	c.JSON(http.StatusOK, investors)
}

func (h *InvestorHandler) GetInvestorHandler(c *gin.Context) {
	inv, err := h.Service.GetInvestor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load investor")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvestorHandler) CreateInvestorHandler(c *gin.Context) {
	var inv models.Investor
	if err := c.ShouldBindJSON(&inv); err != nil {
		badRequest(c, err)
		return
	}
	// Ids are assigned by the store.
	inv.ID = ""
	if err := h.Service.CreateInvestor(c.Request.Context(), &inv); err != nil {
		respondError(c, err, "Failed to create investor")
		return
	}
	getLogger(c).Info("investor created", zap.String("investorId", inv.ID))
	c.JSON(http.StatusCreated, inv)
}

func (h *InvestorHandler) UpdateInvestorHandler(c *gin.Context) {
	var inv models.Investor
	if err := c.ShouldBindJSON(&inv); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.UpdateInvestor(c.Request.Context(), c.Param("id"), &inv); err != nil {
		respondError(c, err, "Failed to update investor")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvestorHandler) DeleteInvestorHandler(c *gin.Context) {
	if err := h.Service.DeleteInvestor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete investor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investor deleted"})
}

// MatchesHandler handles POST /api/investors/:id/matches. No matches is a 200 with an empty list.
func (h *InvestorHandler) MatchesHandler(c *gin.Context) {
	id := c.Param("id")
	matches, err := h.Service.FindMatches(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to compute matches")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investorId": id,
		"count":      len(matches),
		"matches":    matches,
	})
}
