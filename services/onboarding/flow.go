package onboarding

import (
	"fmt"
	"strings"

	"raisedesk/models"
)

// Flow walks a fixed step catalogue. Navigation never depends on the data entered.
type Flow struct {
	steps  []models.OnboardingStep
	cursor int
	data   map[string]string
	fields map[string]struct{}
}

// NewFlow positions a flow for kind at cursor, clamped into the catalogue.
func NewFlow(kind string, cursor int, data map[string]string) (*Flow, error) {
	steps, err := Steps(kind)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]string{}
	}
	fields := make(map[string]struct{})
	for _, s := range steps {
		for _, f := range s.Fields {
			fields[f.Name] = struct{}{}
		}
	}
	f := &Flow{steps: steps, data: data, fields: fields}
	f.cursor = min(max(cursor, 0), len(steps)-1)
	return f, nil
}

func (f *Flow) Current() models.OnboardingStep { return f.steps[f.cursor] }

func (f *Flow) Index() int { return f.cursor }

func (f *Flow) Len() int { return len(f.steps) }

func (f *Flow) CanNext() bool { return f.cursor < len(f.steps)-1 }

func (f *Flow) CanPrev() bool { return f.cursor > 0 }

// Next advances one step. At the last step it does nothing.
func (f *Flow) Next() {
	if f.CanNext() {
		f.cursor++
	}
}

// Prev goes back one step. At the first step it does nothing.
func (f *Flow) Prev() {
	if f.CanPrev() {
		f.cursor--
	}
}

// Set records a value for any field of the catalogue, not only the current step.
func (f *Flow) Set(name, value string) error {
	if _, ok := f.fields[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.data[name] = value
	return nil
}

func (f *Flow) Data() map[string]string { return f.data }

// Progress is the fraction of steps reached, counting the current one.
func (f *Flow) Progress() float64 {
	return float64(f.cursor+1) / float64(len(f.steps))
}

// Missing returns required fields that are blank, in catalogue order.
func (f *Flow) Missing() []string {
	missing := []string{}
	for _, s := range f.steps {
		for _, fld := range s.Fields {
			if fld.Required && strings.TrimSpace(f.data[fld.Name]) == "" {
				missing = append(missing, fld.Name)
			}
		}
	}
	return missing
}
