package forms

import (
	"slices"
	"strings"
)

// ProfileSteps is the number of steps of the profile form
const ProfileSteps = 5

// Genders offered on profile setup
var Genders = []string{"female", "male", "other"}

// Measurements are optional body measurements in centimetres and kilograms
type Measurements struct {
	Height string
	Weight string
	Chest  string
	Waist  string
	Hip    string
}

// ProfilePayload is the result of profile setup
type ProfilePayload struct {
	Name             string
	Gender           string
	AgeGroup         *int
	SkinTone         string
	StylePreferences []string
	Measurements     Measurements
}

// ProfileForm is the five-step profile form: name, gender, age group,
// skin tone, style preferences with measurements.
type ProfileForm struct {
	Step         int
	Name         string
	Gender       string
	AgeGroup     *int
	SkinTone     string
	Measurements Measurements

	allowedStyles []string
	styles        []string
}

// NewProfileForm returns an empty form offering the given styles
func NewProfileForm(styles []string) *ProfileForm {
	return &ProfileForm{Step: 1, allowedStyles: slices.Clone(styles)}
}

// SetAgeGroup selects an age group
func (f *ProfileForm) SetAgeGroup(g int) {
	f.AgeGroup = &g
}

// ToggleStyle adds the style if absent and removes it if present
func (f *ProfileForm) ToggleStyle(name string) {
	if !slices.Contains(f.allowedStyles, name) {
		return
	}
	if i := slices.Index(f.styles, name); i >= 0 {
		f.styles = slices.Delete(f.styles, i, i+1)
		return
	}
	f.styles = append(f.styles, name)
}

// Selected reports whether a style is currently selected
func (f *ProfileForm) Selected(name string) bool {
	return slices.Contains(f.styles, name)
}

// CanProceed reports whether the current step is complete
func (f *ProfileForm) CanProceed() bool {
	switch f.Step {
	case 1:
		return strings.TrimSpace(f.Name) != ""
	case 2:
		return slices.Contains(Genders, f.Gender)
	case 3:
		return f.AgeGroup != nil
	case 4:
		return f.SkinTone != ""
	case 5:
		return len(f.styles) > 0
	default:
		return false
	}
}

// Last reports whether the form is on its final step
func (f *ProfileForm) Last() bool {
	return f.Step == ProfileSteps
}

// Next advances one step if the current one is complete
func (f *ProfileForm) Next() bool {
	if !f.CanProceed() || f.Last() {
		return false
	}
	f.Step++
	return true
}

// Back returns to the previous step
func (f *ProfileForm) Back() bool {
	if f.Step <= 1 {
		return false
	}
	f.Step--
	return true
}

// Payload builds the profile result with the name trimmed
func (f *ProfileForm) Payload() ProfilePayload {
	return ProfilePayload{
		Name:             strings.TrimSpace(f.Name),
		Gender:           f.Gender,
		AgeGroup:         f.AgeGroup,
		SkinTone:         f.SkinTone,
		StylePreferences: slices.Clone(f.styles),
		Measurements:     f.Measurements,
	}
}
