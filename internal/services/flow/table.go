package flow

import "github.com/blackpdx/ggokka-ot/internal/model"

// effect is the session mutation attached to a transition
type effect int

const (
	effectNone effect = iota
	effectSetName
	effectClearSession
	effectIncLoved
	effectIncBlocked
)

type transitionKey struct {
	from  model.Screen
	event model.Event
}

type transition struct {
	target model.Screen
	effect effect
}

// transitions is the fixed (screen, event) dispatch table
var transitions = buildTransitions()

func buildTransitions() map[transitionKey]transition {
	t := map[transitionKey]transition{
		{model.ScreenSplash, model.EventGetStarted}: {target: model.ScreenLogin},

		{model.ScreenLogin, model.EventLoginSuccess}: {target: model.ScreenHome, effect: effectSetName},
		{model.ScreenLogin, model.EventGoToSignup}:   {target: model.ScreenSignup},

		{model.ScreenSignup, model.EventBackToLogin}:   {target: model.ScreenLogin},
		{model.ScreenSignup, model.EventSignupSuccess}: {target: model.ScreenUserProfileSetup, effect: effectSetName},

		{model.ScreenUserProfileSetup, model.EventProfileComplete}: {target: model.ScreenBodyPhotoSetup, effect: effectSetName},
		{model.ScreenBodyPhotoSetup, model.EventPhotoComplete}:     {target: model.ScreenWardrobeSetup},
		{model.ScreenWardrobeSetup, model.EventWardrobeComplete}:   {target: model.ScreenHome},
		{model.ScreenWardrobeSetup, model.EventWardrobeSkip}:       {target: model.ScreenHome},

		{model.ScreenHome, model.EventLogout}: {target: model.ScreenLogin, effect: effectClearSession},
	}

	// The bottom navigation is shown on every main screen
	for _, from := range model.MainScreens() {
		for event, target := range model.NavigationEvents() {
			t[transitionKey{from, event}] = transition{target: target}
		}
	}

	for _, s := range []model.Screen{model.ScreenDailyOutfit, model.ScreenTodayCuration, model.ScreenRecentStyling} {
		t[transitionKey{s, model.EventLikeOutfit}] = transition{target: s, effect: effectIncLoved}
		t[transitionKey{s, model.EventBlockOutfit}] = transition{target: s, effect: effectIncBlocked}
	}

	return t
}

// predecessors returns the fixed back table for the given policy
func predecessors(policy BackPolicy) map[model.Screen]model.Screen {
	back := map[model.Screen]model.Screen{
		model.ScreenSignup:        model.ScreenLogin,
		model.ScreenWardrobeSetup: model.ScreenBodyPhotoSetup,
	}

	switch policy {
	case BackToAuth:
		back[model.ScreenUserProfileSetup] = model.ScreenLogin
		back[model.ScreenBodyPhotoSetup] = model.ScreenLogin
	default:
		back[model.ScreenUserProfileSetup] = model.ScreenSignup
		back[model.ScreenBodyPhotoSetup] = model.ScreenUserProfileSetup
	}

	for _, s := range model.MainScreens() {
		if s != model.ScreenHome {
			back[s] = model.ScreenHome
		}
	}
	return back
}
