package investor

import (
	"strings"

	"raisedesk/models"
)

// Validate checks the invariants a complete investor record must satisfy.
func Validate(inv models.Investor) error {
	if strings.TrimSpace(inv.Name) == "" {
		return ValidationError{Field: "name", Reason: "required"}
	}
	if inv.InvestmentSize.Min < 0 {
		return ValidationError{Field: "investmentSize.min", Reason: "must not be negative"}
	}
	if inv.InvestmentSize.Min > inv.InvestmentSize.Max {
		return ValidationError{Field: "investmentSize", Reason: "min must not exceed max"}
	}
	prefs := []struct {
		field  string
		values []string
	}{
		{"preferredSectors", inv.PreferredSectors},
		{"preferredStages", inv.PreferredStages},
		{"preferredGeographies", inv.PreferredGeographies},
	}
	for _, p := range prefs {
		if len(p.values) == 0 {
			return ValidationError{Field: p.field, Reason: "at least one value required"}
		}
	}
	switch inv.Status {
	case models.InvestorStatusActive, models.InvestorStatusInactive, models.InvestorStatusProspect:
	default:
		return ValidationError{Field: "status", Reason: "must be active, inactive or prospect"}
	}
	return nil
}
