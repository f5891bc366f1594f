package flow

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.controller = NewController(DefaultConfig(), testutil.NopLogger())
}

func (s *ControllerSuite) fire(event model.Event, payload model.Payload) model.Screen {
	screen, err := s.controller.Transition(event, payload)
	s.Require().NoError(err)
	return screen
}

// place puts c on a screen without going through the dispatch table
func place(c *Controller, screen model.Screen, session model.Session) {
	c.screen = screen
	c.session = session
}

func (s *ControllerSuite) signIn(name string) {
	s.fire(model.EventGetStarted, model.Payload{})
	s.fire(model.EventLoginSuccess, model.Payload{Name: name})
}

// Start tests

func (s *ControllerSuite) TestNewControllerStartsOnSplash() {
	s.Equal(model.ScreenSplash, s.controller.Screen())
	s.Equal(model.Session{}, s.controller.Session())
}

func (s *ControllerSuite) TestStartAlwaysYieldsSplash() {
	for i := 0; i < 3; i++ {
		s.Equal(model.ScreenSplash, s.controller.Start())
		s.signIn("Kim")
		s.fire(model.EventOpenShopping, model.Payload{})
	}
	s.Equal(model.ScreenSplash, s.controller.Start())
	s.Equal(model.Session{}, s.controller.Session())
}

// Transition tests

func (s *ControllerSuite) TestEveryPairYieldsKnownScreen() {
	for _, screen := range model.AllScreens() {
		for _, event := range model.AllEvents() {
			c := NewController(DefaultConfig(), testutil.NopLogger())
			place(c, screen, model.Session{UserName: "Lee"})

			next, err := c.Transition(event, model.Payload{})
			s.True(next.Valid(), "%s on %s gave %q", event, screen, next)

			_, inTable := transitions[transitionKey{screen, event}]
			if inTable {
				s.NoError(err, "%s on %s", event, screen)
				continue
			}
			s.ErrorIs(err, model.ErrInvalidTransition, "%s on %s", event, screen)
			s.Equal(screen, c.Screen(), "miss must not move %s", screen)
			s.Equal(model.Session{UserName: "Lee"}, c.Session())
		}
	}
}

func (s *ControllerSuite) TestGetStartedGoesToLogin() {
	s.Equal(model.ScreenLogin, s.fire(model.EventGetStarted, model.Payload{}))
}

func (s *ControllerSuite) TestLoginSuccessSetsNameAndGoesHome() {
	s.fire(model.EventGetStarted, model.Payload{})

	screen := s.fire(model.EventLoginSuccess, model.Payload{Name: "  Kim  ", Email: "kim@example.com"})

	s.Equal(model.ScreenHome, screen)
	s.Equal("Kim", s.controller.Session().UserName)
	s.Equal("kim@example.com", s.controller.Session().Email)
}

func (s *ControllerSuite) TestLoginSuccessIgnoredOutsideLogin() {
	_, err := s.controller.Transition(model.EventLoginSuccess, model.Payload{Name: "Kim"})

	s.ErrorIs(err, model.ErrInvalidTransition)
	s.Equal(model.ScreenSplash, s.controller.Screen())
	s.Empty(s.controller.Session().UserName)
}

func (s *ControllerSuite) TestSignupOnboardingPath() {
	s.fire(model.EventGetStarted, model.Payload{})
	s.Equal(model.ScreenSignup, s.fire(model.EventGoToSignup, model.Payload{}))
	s.Equal(model.ScreenUserProfileSetup, s.fire(model.EventSignupSuccess, model.Payload{Name: "Park"}))
	s.Equal("Park", s.controller.Session().UserName)

	s.Equal(model.ScreenBodyPhotoSetup, s.fire(model.EventProfileComplete, model.Payload{Name: "Park Jimin "}))
	s.Equal("Park Jimin", s.controller.Session().UserName)

	s.Equal(model.ScreenWardrobeSetup, s.fire(model.EventPhotoComplete, model.Payload{}))
	s.Equal(model.ScreenHome, s.fire(model.EventWardrobeSkip, model.Payload{}))
}

func (s *ControllerSuite) TestBlankNameKeepsPreviousName() {
	s.fire(model.EventGetStarted, model.Payload{})
	s.fire(model.EventGoToSignup, model.Payload{})
	s.fire(model.EventSignupSuccess, model.Payload{Name: "Park"})

	s.fire(model.EventProfileComplete, model.Payload{Name: "   "})

	s.Equal("Park", s.controller.Session().UserName)
}

func (s *ControllerSuite) TestBackToLoginFromSignup() {
	s.fire(model.EventGetStarted, model.Payload{})
	s.fire(model.EventGoToSignup, model.Payload{})

	s.Equal(model.ScreenLogin, s.fire(model.EventBackToLogin, model.Payload{}))
}

func (s *ControllerSuite) TestNavigationBetweenMainScreens() {
	s.signIn("Kim")

	for event, target := range model.NavigationEvents() {
		s.Equal(target, s.fire(event, model.Payload{}))
		s.Equal(model.ScreenStyleAnalysis, s.fire(model.EventOpenStyleAnalysis, model.Payload{}))
	}
}

func (s *ControllerSuite) TestLogoutClearsSession() {
	s.signIn("Kim")
	s.fire(model.EventOpenDailyOutfit, model.Payload{})
	s.fire(model.EventLikeOutfit, model.Payload{})
	s.fire(model.EventOpenHome, model.Payload{})

	screen := s.fire(model.EventLogout, model.Payload{})

	s.Equal(model.ScreenLogin, screen)
	s.Equal(model.Session{}, s.controller.Session())
}

func (s *ControllerSuite) TestLikeAndBlockCountOnOutfitScreens() {
	s.signIn("Kim")
	s.fire(model.EventOpenDailyOutfit, model.Payload{})

	s.Equal(model.ScreenDailyOutfit, s.fire(model.EventLikeOutfit, model.Payload{}))
	s.fire(model.EventLikeOutfit, model.Payload{})
	s.fire(model.EventBlockOutfit, model.Payload{})

	s.fire(model.EventOpenTodayCuration, model.Payload{})
	s.fire(model.EventLikeOutfit, model.Payload{})

	session := s.controller.Session()
	s.Equal(3, session.LovedCount)
	s.Equal(1, session.BlockedCount)
}

func (s *ControllerSuite) TestLikeIgnoredOnHome() {
	s.signIn("Kim")

	_, err := s.controller.Transition(model.EventLikeOutfit, model.Payload{})

	s.ErrorIs(err, model.ErrInvalidTransition)
	s.Equal(0, s.controller.Session().LovedCount)
}

func (s *ControllerSuite) TestFallbackHomeOnMainScreens() {
	s.controller = NewController(Config{FallbackHome: true}, testutil.NopLogger())
	s.signIn("Kim")
	s.fire(model.EventOpenShopping, model.Payload{})

	screen, err := s.controller.Transition(model.EventGetStarted, model.Payload{})

	s.NoError(err)
	s.Equal(model.ScreenHome, screen)
}

func (s *ControllerSuite) TestFallbackHomeDoesNotApplyDuringOnboarding() {
	s.controller = NewController(Config{FallbackHome: true}, testutil.NopLogger())

	_, err := s.controller.Transition(model.EventLogout, model.Payload{})

	s.ErrorIs(err, model.ErrInvalidTransition)
	s.Equal(model.ScreenSplash, s.controller.Screen())
}

func (s *ControllerSuite) TestFallbackHomeNeedsSignedInUser() {
	s.controller = NewController(Config{FallbackHome: true}, testutil.NopLogger())
	place(s.controller, model.ScreenShopping, model.Session{})

	screen, err := s.controller.Transition(model.EventGetStarted, model.Payload{})

	s.ErrorIs(err, model.ErrInvalidTransition)
	s.Equal(model.ScreenShopping, screen)
}

// Availability tests

func (s *ControllerSuite) TestUnavailableScreenCannotBeEntered() {
	s.controller = NewController(Config{
		Unavailable: []model.Screen{model.ScreenVirtualFitting, model.ScreenRecentStyling},
	}, testutil.NopLogger())
	s.signIn("Kim")

	screen, err := s.controller.Transition(model.EventOpenVirtualFitting, model.Payload{})

	s.ErrorIs(err, model.ErrScreenUnavailable)
	s.Equal(model.ScreenHome, screen)
	s.False(s.controller.Available(model.ScreenVirtualFitting))
	s.True(s.controller.Available(model.ScreenShopping))
	s.NotContains(s.controller.Events(), model.EventOpenVirtualFitting)
	s.NotContains(s.controller.Events(), model.EventOpenRecentStyling)
	s.Contains(s.controller.Events(), model.EventOpenShopping)
}

// Back tests

func (s *ControllerSuite) TestBackFromMainScreensGoesHome() {
	s.signIn("Kim")
	for _, screen := range model.MainScreens() {
		if screen == model.ScreenHome {
			continue
		}
		place(s.controller, screen, s.controller.Session())

		prev, err := s.controller.Back()

		s.NoError(err)
		s.Equal(model.ScreenHome, prev, "back from %s", screen)
	}
}

func (s *ControllerSuite) TestBackLinearOnboarding() {
	cases := map[model.Screen]model.Screen{
		model.ScreenSignup:           model.ScreenLogin,
		model.ScreenUserProfileSetup: model.ScreenSignup,
		model.ScreenBodyPhotoSetup:   model.ScreenUserProfileSetup,
		model.ScreenWardrobeSetup:    model.ScreenBodyPhotoSetup,
	}
	for from, want := range cases {
		place(s.controller, from, model.Session{})
		got, err := s.controller.Back()
		s.NoError(err)
		s.Equal(want, got, "back from %s", from)
	}
}

func (s *ControllerSuite) TestBackToAuthOnboarding() {
	s.controller = NewController(Config{BackPolicy: BackToAuth}, testutil.NopLogger())
	cases := map[model.Screen]model.Screen{
		model.ScreenSignup:           model.ScreenLogin,
		model.ScreenUserProfileSetup: model.ScreenLogin,
		model.ScreenBodyPhotoSetup:   model.ScreenLogin,
		model.ScreenWardrobeSetup:    model.ScreenBodyPhotoSetup,
	}
	for from, want := range cases {
		place(s.controller, from, model.Session{})
		got, err := s.controller.Back()
		s.NoError(err)
		s.Equal(want, got, "back from %s", from)
	}
}

func (s *ControllerSuite) TestBackWithoutPredecessor() {
	for _, screen := range []model.Screen{model.ScreenSplash, model.ScreenLogin, model.ScreenHome} {
		place(s.controller, screen, model.Session{})
		s.False(s.controller.CanBack())

		got, err := s.controller.Back()

		s.ErrorIs(err, model.ErrNoPredecessor)
		s.Equal(screen, got)
	}
}

func (s *ControllerSuite) TestBackIsNotAHistoryStack() {
	s.signIn("Kim")
	s.fire(model.EventOpenShopping, model.Payload{})
	s.fire(model.EventOpenStyleAnalysis, model.Payload{})

	prev, err := s.controller.Back()

	s.NoError(err)
	s.Equal(model.ScreenHome, prev)
}

func (s *ControllerSuite) TestEventsFromSplash() {
	s.Equal([]model.Event{model.EventGetStarted}, s.controller.Events())
}
