package model

import "time"

// Event is a flow event fired by a screen.
type Event string

const (
	// Onboarding events
	EventGetStarted       Event = "get-started"
	EventGoToSignup       Event = "go-to-signup"
	EventBackToLogin      Event = "back-to-login"
	EventLoginSuccess     Event = "login-success"
	EventSignupSuccess    Event = "signup-success"
	EventProfileComplete  Event = "profile-complete"
	EventPhotoComplete    Event = "photo-complete"
	EventWardrobeComplete Event = "wardrobe-complete"
	EventWardrobeSkip     Event = "wardrobe-skip"

	// Main screen events
	EventLogout      Event = "logout"
	EventLikeOutfit  Event = "like-outfit"
	EventBlockOutfit Event = "block-outfit"

	// Navigation events, one per main screen
	EventOpenHome           Event = "open-home"
	EventOpenTodayCuration  Event = "open-today-curation"
	EventOpenDailyOutfit    Event = "open-daily-outfit"
	EventOpenWardrobe       Event = "open-wardrobe"
	EventOpenStyleAnalysis  Event = "open-style-analysis"
	EventOpenShopping       Event = "open-shopping"
	EventOpenVirtualFitting Event = "open-virtual-fitting"
	EventOpenRecentStyling  Event = "open-recent-styling"
	EventOpenBlockedOutfits Event = "open-blocked-outfits"
)

// AllEvents returns every flow event.
func AllEvents() []Event {
	return []Event{
		EventGetStarted, EventGoToSignup, EventBackToLogin, EventLoginSuccess,
		EventSignupSuccess, EventProfileComplete, EventPhotoComplete,
		EventWardrobeComplete, EventWardrobeSkip,
		EventLogout, EventLikeOutfit, EventBlockOutfit,
		EventOpenHome, EventOpenTodayCuration, EventOpenDailyOutfit,
		EventOpenWardrobe, EventOpenStyleAnalysis, EventOpenShopping,
		EventOpenVirtualFitting, EventOpenRecentStyling, EventOpenBlockedOutfits,
	}
}

// NavigationEvents maps each navigation event to the main screen it opens.
func NavigationEvents() map[Event]Screen {
	return map[Event]Screen{
		EventOpenHome:           ScreenHome,
		EventOpenTodayCuration:  ScreenTodayCuration,
		EventOpenDailyOutfit:    ScreenDailyOutfit,
		EventOpenWardrobe:       ScreenWardrobeManagement,
		EventOpenStyleAnalysis:  ScreenStyleAnalysis,
		EventOpenShopping:       ScreenShopping,
		EventOpenVirtualFitting: ScreenVirtualFitting,
		EventOpenRecentStyling:  ScreenRecentStyling,
		EventOpenBlockedOutfits: ScreenBlockedOutfits,
	}
}

// Payload carries optional data attached to an event.
type Payload struct {
	Name  string
	Email string
}

// NotificationType identifies a server-pushed notification
type NotificationType string

const (
	NotificationAnalysisStarted  NotificationType = "analysis_started"
	NotificationAnalysisComplete NotificationType = "analysis_complete"
	NotificationAnalysisFailed   NotificationType = "analysis_failed"
	NotificationScreenChanged    NotificationType = "screen_changed"
)

// Notification is pushed to a client session over SSE
type Notification struct {
	Type      NotificationType
	Timestamp time.Time
	SessionID string
	Screen    Screen
	Payload   any
}

// AnalysisCompletePayload contains data for analysis complete notifications
type AnalysisCompletePayload struct {
	JobID   string      `json:"jobId"`
	Profile BodyProfile `json:"profile"`
}

// AnalysisFailedPayload contains data for analysis failed notifications
type AnalysisFailedPayload struct {
	JobID  string `json:"jobId"`
	Reason string `json:"reason"`
}
