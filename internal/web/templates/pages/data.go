// Package pages renders the app screens.
package pages

import (
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
	"github.com/blackpdx/ggokka-ot/internal/web/templates/layout"
)

// AnalysisView is the body photo analysis state
type AnalysisView struct {
	Running bool
	Profile *model.BodyProfile
	Error   string
}

// WardrobeView is the data of the wardrobe screen
type WardrobeView struct {
	Category model.WardrobeCategory
	Query    string
	Items    []model.WardrobeItem
	Stats    model.WardrobeStats
	Counts   []model.CategoryCount
}

// DailyView is the data of the daily outfit screen
type DailyView struct {
	Occasion  model.Occasion
	Occasions []model.Occasion
	Outfits   []model.Outfit
	Average   int
}

// ReportView is the data of the style analysis screen
type ReportView struct {
	Periods []model.Period
	Report  model.StyleReport
}

// ShoppingView is the data of the shopping screen
type ShoppingView struct {
	Category   model.ShoppingCategory
	Categories []model.ShoppingCategory
	Price      model.PriceRange
	Products   []model.Product
}

// ScreenData is everything a screen may show
type ScreenData struct {
	layout.PageData

	Screen  model.Screen
	Session model.Session
	CanBack bool
	// Available reports whether a main screen can be opened
	Available map[model.Screen]bool

	LoginEmail string
	Signup     *forms.SignupForm
	Profile    *forms.ProfileForm
	SkinTones  []model.SkinTone
	Styles     []model.StylePreference
	Analysis   AnalysisView

	Curation []model.CuratedOutfit
	Daily    DailyView
	Wardrobe WardrobeView
	Report   ReportView
	Shopping ShoppingView
}

func (d ScreenData) signupForm() *forms.SignupForm {
	if d.Signup == nil {
		return forms.NewSignupForm()
	}
	return d.Signup
}

func (d ScreenData) profileForm() *forms.ProfileForm {
	if d.Profile == nil {
		return forms.NewProfileForm(nil)
	}
	return d.Profile
}

func (d ScreenData) page() layout.PageData {
	p := d.PageData
	if p.Title == "" {
		p.Title = d.Screen.Title()
	}
	return p
}
