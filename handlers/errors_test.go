package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"raisedesk/database"
	"raisedesk/services/board"
	investorService "raisedesk/services/investor"
	"raisedesk/services/meeting"
	"raisedesk/services/onboarding"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("investor x: %w", database.ErrNotFound), http.StatusNotFound},
		{board.ErrTaskNotFound, http.StatusNotFound},
		{investorService.ValidationError{Field: "status", Reason: "bad"}, http.StatusUnprocessableEntity},
		{&onboarding.MissingFieldsError{Fields: []string{"fundName"}}, http.StatusUnprocessableEntity},
		{board.ErrInvalidColumn, http.StatusBadRequest},
		{onboarding.ErrInvalidKind, http.StatusBadRequest},
		{fmt.Errorf("%w: m1 is cancelled", meeting.ErrInvalidTransition), http.StatusConflict},
		{onboarding.ErrAlreadySubmitted, http.StatusConflict},
		{fmt.Errorf("failed to claim submission s1: submission s1: %w", database.ErrConflict), http.StatusConflict},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			respondError(c, tc.err, "Failed")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestMissingFieldsBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	respondError(c, &onboarding.MissingFieldsError{Fields: []string{"sector", "stage"}}, "Failed")

	var body struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"sector", "stage"}, body.Fields)
}
