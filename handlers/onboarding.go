package handlers

import (
	"net/http"

	"raisedesk/services/onboarding"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OnboardingHandler struct {
	Service onboarding.OnboardingService
}

func NewOnboardingHandler(s onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Service: s}
}

type onboardingFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// StepsHandler handles GET /api/onboarding/steps/:kind.
func (h *OnboardingHandler) StepsHandler(c *gin.Context) {
	kind := c.Param("kind")
	steps, err := h.Service.Steps(kind)
	if err != nil {
		respondError(c, err, "Failed to load steps")
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "total": len(steps), "steps": steps})
}

func (h *OnboardingHandler) StartHandler(c *gin.Context) {
	v, err := h.Service.Start(c.Request.Context(), c.Param("kind"))
	if err != nil {
		respondError(c, err, "Failed to start onboarding")
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *OnboardingHandler) GetHandler(c *gin.Context) {
	v, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load submission")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *OnboardingHandler) SetFieldsHandler(c *gin.Context) {
	var req onboardingFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.Service.SetFields(c.Request.Context(), c.Param("id"), req.Fields)
	if err != nil {
		respondError(c, err, "Failed to save fields")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *OnboardingHandler) NextHandler(c *gin.Context) {
	v, err := h.Service.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to advance submission")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *OnboardingHandler) PrevHandler(c *gin.Context) {
	v, err := h.Service.Prev(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to rewind submission")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *OnboardingHandler) SubmitHandler(c *gin.Context) {
	v, err := h.Service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to submit onboarding")
		return
	}
	getLogger(c).Info("onboarding submitted", zap.String("submissionId", v.Submission.ID))
	c.JSON(http.StatusOK, v)
}

func (h *OnboardingHandler) PromoteHandler(c *gin.Context) {
	v, err := h.Service.Promote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to promote submission")
		return
	}
	c.JSON(http.StatusOK, v)
}
