package client

import (
	"fmt"
	"strings"

	"raisedesk/models"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the fields a client needs before it can be matched.
func Validate(c models.Client) error {
	required := []struct {
		field string
		value string
	}{
		{"name", c.Name},
		{"company", c.Company},
		{"sector", c.Sector},
		{"stage", c.Stage},
		{"geography", c.Geography},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ValidationError{Field: r.field, Reason: "required"}
		}
	}
	if c.FundingNeeded < 0 {
		return ValidationError{Field: "fundingNeeded", Reason: "must not be negative"}
	}
	switch c.Status {
	case models.ClientStatusRaising, models.ClientStatusFunded, models.ClientStatusClosed:
	default:
		return ValidationError{Field: "status", Reason: "must be raising, funded or closed"}
	}
	return nil
}
