package handlers

import (
	"errors"
	"net/http"
	"strings"

	"raisedesk/database"
	"raisedesk/services/board"
	clientService "raisedesk/services/client"
	investorService "raisedesk/services/investor"
	"raisedesk/services/meeting"
	"raisedesk/services/onboarding"
	"raisedesk/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Anything unrecognised is a 500
// reported with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		invErr     investorService.ValidationError
		cliErr     clientService.ValidationError
		missingErr *onboarding.MissingFieldsError
	)
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, board.ErrTaskNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &invErr), errors.As(err, &cliErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Validation failed", err.Error())
	case errors.As(err, &missingErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Missing required fields",
			"details": strings.Join(missingErr.Fields, ", "),
			"fields":  missingErr.Fields,
		})
	case errors.Is(err, board.ErrInvalidColumn),
		errors.Is(err, onboarding.ErrInvalidKind),
		errors.Is(err, onboarding.ErrUnknownField):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, meeting.ErrInvalidTransition),
		errors.Is(err, database.ErrConflict),
		errors.Is(err, onboarding.ErrAlreadySubmitted),
		errors.Is(err, onboarding.ErrNotSubmitted),
		errors.Is(err, onboarding.ErrAlreadyPromoted):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback, err.Error())
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
