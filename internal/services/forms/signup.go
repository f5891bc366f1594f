package forms

import (
	"slices"
	"strings"
)

// SignupSteps is the number of steps of the signup form
const SignupSteps = 3

// SignupStyles are the styles offered on signup
var SignupStyles = []string{"캐주얼", "미니멀", "클래식", "스트릿", "스포티", "비즈니스"}

// SignupPayload is what gets submitted to the backend
type SignupPayload struct {
	Name             string
	Email            string
	Password         string
	AgeGroup         *int
	StylePreferences []string
}

// SignupForm is the three-step signup form:
// 1 basic info, 2 age group, 3 style preferences.
type SignupForm struct {
	Step     int
	Name     string
	Email    string
	Password string
	AgeGroup *int

	styles []string
}

// NewSignupForm returns an empty form on the first step
func NewSignupForm() *SignupForm {
	return &SignupForm{Step: 1}
}

// SetAgeGroup selects an age group
func (f *SignupForm) SetAgeGroup(g int) {
	f.AgeGroup = &g
}

// ToggleStyle adds the style if absent and removes it if present.
// Styles not offered on signup are ignored.
func (f *SignupForm) ToggleStyle(name string) {
	if !slices.Contains(SignupStyles, name) {
		return
	}
	if i := slices.Index(f.styles, name); i >= 0 {
		f.styles = slices.Delete(f.styles, i, i+1)
		return
	}
	f.styles = append(f.styles, name)
}

// Selected reports whether a style is currently selected
func (f *SignupForm) Selected(name string) bool {
	return slices.Contains(f.styles, name)
}

// Styles returns the selected styles in selection order
func (f *SignupForm) Styles() []string {
	return slices.Clone(f.styles)
}

// CanProceed reports whether the current step is complete
func (f *SignupForm) CanProceed() bool {
	switch f.Step {
	case 1:
		return strings.TrimSpace(f.Name) != "" && strings.Contains(f.Email, "@") && f.Password != ""
	case 2:
		return f.AgeGroup != nil
	case 3:
		return len(f.styles) > 0
	default:
		return false
	}
}

// Last reports whether the form is on its final step
func (f *SignupForm) Last() bool {
	return f.Step == SignupSteps
}

// Next advances one step. It returns false when the current step is
// incomplete or already the last one.
func (f *SignupForm) Next() bool {
	if !f.CanProceed() || f.Last() {
		return false
	}
	f.Step++
	return true
}

// Back returns to the previous step. It returns false on the first step.
func (f *SignupForm) Back() bool {
	if f.Step <= 1 {
		return false
	}
	f.Step--
	return true
}

// Progress returns completion in percent
func (f *SignupForm) Progress() int {
	return f.Step * 100 / SignupSteps
}

// Payload builds the submission
func (f *SignupForm) Payload() SignupPayload {
	return SignupPayload{
		Name:             strings.TrimSpace(f.Name),
		Email:            strings.TrimSpace(f.Email),
		Password:         f.Password,
		AgeGroup:         f.AgeGroup,
		StylePreferences: f.Styles(),
	}
}
