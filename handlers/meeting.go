package handlers

import (
	"errors"
	"io"
	"net/http"

	"raisedesk/models"
	"raisedesk/services/meeting"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	Service meeting.MeetingService
}

func NewMeetingHandler(s meeting.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: s}
}

type completeMeetingRequest struct {
	Notes *string `json:"notes"`
}

func (h *MeetingHandler) ListMeetingsHandler(c *gin.Context) {
	meetings, err := h.Service.ListMeetings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list meetings")
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) UpcomingMeetingsHandler(c *gin.Context) {
	meetings, err := h.Service.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list upcoming meetings")
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) ScheduleMeetingHandler(c *gin.Context) {
	var m models.Meeting
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.ScheduleMeeting(c.Request.Context(), &m); err != nil {
		respondError(c, err, "Failed to schedule meeting")
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MeetingHandler) CancelMeetingHandler(c *gin.Context) {
	m, err := h.Service.CancelMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel meeting")
		return
	}
	c.JSON(http.StatusOK, m)
}

// CompleteMeetingHandler accepts an optional {"notes": "..."} body.
func (h *MeetingHandler) CompleteMeetingHandler(c *gin.Context) {
	var req completeMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	m, err := h.Service.CompleteMeeting(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err, "Failed to complete meeting")
		return
	}
	c.JSON(http.StatusOK, m)
}
