package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/storage/memory"
	"github.com/blackpdx/ggokka-ot/internal/storage/postgres"
	redisstorage "github.com/blackpdx/ggokka-ot/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp(Config{
		AnalysisDelay:      3 * time.Second,
		Flow:               flow.Config{Unavailable: []model.Screen{model.ScreenVirtualFitting}},
		SessionIdleTimeout: time.Hour,
	})
	s.ctx = context.Background()
}

// Test: Complete onboarding from splash to home, then browsing the main screens
func (s *IntegrationSuite) TestCompleteOnboardingFlow() {
	sess := s.app.Sessions.Create()
	ctrl := sess.Flow

	// Step 1: Splash to login to signup
	_, err := ctrl.Transition(model.EventGetStarted, model.Payload{})
	s.Require().NoError(err)
	_, err = ctrl.Transition(model.EventGoToSignup, model.Payload{})
	s.Require().NoError(err)

	// Step 2: Fill the signup form and create the account
	f := sess.Signup
	f.Name, f.Email, f.Password = "김꼬까", "kim@example.com", "secret12!"
	s.True(f.Next())
	f.SetAgeGroup(20)
	s.True(f.Next())
	f.ToggleStyle("미니멀")
	p := f.Payload()
	user, err := s.app.AuthService.Signup(s.ctx, auth.SignupRequest{
		Name: p.Name, Email: p.Email, Password: p.Password,
		AgeGroup: p.AgeGroup, StylePreferences: p.StylePreferences,
	})
	s.Require().NoError(err)
	screen, err := ctrl.Transition(model.EventSignupSuccess, model.Payload{Name: user.Name, Email: user.Email})
	s.Require().NoError(err)
	s.Equal(model.ScreenUserProfileSetup, screen)

	// Step 3: Profile, then body analysis on the mock clock
	_, err = ctrl.Transition(model.EventProfileComplete, model.Payload{Name: "김꼬까"})
	s.Require().NoError(err)

	done := make(chan model.Notification, 2)
	_, err = s.app.Analyzer.Start(s.ctx, sess.ID+":photo.jpg", func(n model.Notification) {
		if n.Type != model.NotificationAnalysisStarted {
			done <- n
		}
	})
	s.Require().NoError(err)
	s.Require().Eventually(func() bool { return s.app.MockClock.Waiters() == 1 }, time.Second, time.Millisecond)
	s.app.MockClock.Advance(3 * time.Second)
	select {
	case n := <-done:
		s.Equal(model.NotificationAnalysisComplete, n.Type)
	case <-time.After(time.Second):
		s.Fail("analysis did not complete")
	}

	// Step 4: Finish onboarding
	_, err = ctrl.Transition(model.EventPhotoComplete, model.Payload{})
	s.Require().NoError(err)
	screen, err = ctrl.Transition(model.EventWardrobeSkip, model.Payload{})
	s.Require().NoError(err)
	s.Equal(model.ScreenHome, screen)
	s.Equal("김꼬까", ctrl.Session().UserName)

	// Step 5: Like a shuffled daily outfit
	_, err = ctrl.Transition(model.EventOpenDailyOutfit, model.Payload{})
	s.Require().NoError(err)
	outfits, err := s.app.CatalogService.DailyOutfits(model.OccasionDaily)
	s.Require().NoError(err)
	shuffled := s.app.CatalogService.Shuffle(outfits)
	s.Equal(outfits[1].ID, shuffled[0].ID)
	_, err = ctrl.Transition(model.EventLikeOutfit, model.Payload{})
	s.Require().NoError(err)
	s.Equal(1, ctrl.Session().LovedCount)

	// Step 6: Unavailable screen, then logout
	_, err = ctrl.Transition(model.EventOpenVirtualFitting, model.Payload{})
	s.ErrorIs(err, model.ErrScreenUnavailable)
	_, err = ctrl.Back()
	s.Require().NoError(err)
	screen, err = ctrl.Transition(model.EventLogout, model.Payload{})
	s.Require().NoError(err)
	s.Equal(model.ScreenLogin, screen)
	s.False(ctrl.Session().SignedIn())

	// Step 7: The account survives logout
	again, err := s.app.AuthService.Login(s.ctx, "kim@example.com", "secret12!")
	s.Require().NoError(err)
	s.Equal(user.ID, again.ID)
}

func (s *IntegrationSuite) TestPruneSessionsRemovesHubs() {
	idle := s.app.Sessions.Create()
	s.app.HubManager.GetOrCreateHub(idle.ID)

	s.app.MockClock.Advance(30 * time.Minute)
	active := s.app.Sessions.Create()
	s.app.MockClock.Advance(45 * time.Minute)

	s.Equal(1, s.app.PruneSessions())

	_, ok := s.app.Sessions.Get(idle.ID)
	s.False(ok)
	s.Nil(s.app.HubManager.GetHub(idle.ID))
	_, ok = s.app.Sessions.Get(active.ID)
	s.True(ok)
}

func (s *IntegrationSuite) TestSessionsUseConfiguredFlow() {
	app := NewTestApp(Config{Flow: flow.Config{BackPolicy: flow.BackToAuth}})
	sess := app.Sessions.Create()
	for _, ev := range []model.Event{model.EventGetStarted, model.EventGoToSignup, model.EventSignupSuccess, model.EventProfileComplete} {
		_, err := sess.Flow.Transition(ev, model.Payload{Name: "김꼬까"})
		s.Require().NoError(err)
	}
	s.Require().Equal(model.ScreenBodyPhotoSetup, sess.Flow.Screen())

	screen, err := sess.Flow.Back()
	s.Require().NoError(err)
	s.Equal(model.ScreenLogin, screen)
}

func TestOpenStorageMemoryByDefault(t *testing.T) {
	store, err := openStorage(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*memory.Storage); !ok {
		t.Fatalf("got %T, want memory storage", store)
	}
}

func TestNewWithRedis(t *testing.T) {
	mini := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	app, err := New(context.Background(), Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = app.Close() }()

	if _, ok := app.Storage.(*redisstorage.Storage); !ok {
		t.Fatalf("got %T, want redis storage", app.Storage)
	}
}

func TestOpenStorageErrors(t *testing.T) {
	ctx := context.Background()
	pgCfg := postgres.DefaultConfig()
	pgCfg.URL = "postgres://nobody@127.0.0.1:1/none?sslmode=disable"
	pgCfg.ConnectTimeout = 200 * time.Millisecond

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown type", Config{StorageType: "sqlite"}},
		{"redis without config", Config{StorageType: StorageTypeRedis}},
		{"postgres without config", Config{StorageType: StorageTypePostgres}},
		{"postgres unreachable", Config{StorageType: StorageTypePostgres, PostgresConfig: &pgCfg}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := openStorage(ctx, tt.cfg); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
