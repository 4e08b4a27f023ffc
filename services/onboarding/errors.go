package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKind      = errors.New("onboarding kind must be fund or startup")
	ErrUnknownField     = errors.New("unknown onboarding field")
	ErrAlreadySubmitted = errors.New("submission already submitted")
	ErrNotSubmitted     = errors.New("submission has not been submitted")
	ErrAlreadyPromoted  = errors.New("submission already promoted")
)

// MissingFieldsError lists the required fields still blank at submit time.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
