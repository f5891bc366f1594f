package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	clock *mocks.MockClock
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.store = NewStore(Config{
		Flow:        flow.DefaultConfig(),
		Styles:      []string{"미니멀"},
		IdleTimeout: time.Hour,
	}, s.clock, testutil.NopLogger())
}

func (s *StoreSuite) TestCreateStartsOnSplash() {
	sess := s.store.Create()

	s.NotEmpty(sess.ID)
	s.Equal(model.ScreenSplash, sess.Flow.Screen())
	s.Equal(1, sess.Signup.Step)
	s.Equal(1, sess.Profile.Step)
	s.Equal(1, s.store.Len())
}

func (s *StoreSuite) TestGet() {
	sess := s.store.Create()

	got, ok := s.store.Get(sess.ID)
	s.True(ok)
	s.Same(sess, got)

	_, ok = s.store.Get("not-a-uuid")
	s.False(ok)

	_, ok = s.store.Get("6f1c2a7e-9d2b-4a53-8a43-0c8f2b0d9e11")
	s.False(ok)
}

func (s *StoreSuite) TestSessionsAreIndependent() {
	a := s.store.Create()
	b := s.store.Create()

	_, err := a.Flow.Transition(model.EventGetStarted, model.Payload{})
	s.Require().NoError(err)

	s.Equal(model.ScreenLogin, a.Flow.Screen())
	s.Equal(model.ScreenSplash, b.Flow.Screen())
}

func (s *StoreSuite) TestResetCancelsAnalysis() {
	sess := s.store.Create()
	cancelled := false
	sess.Lock()
	sess.Flow.Transition(model.EventGetStarted, model.Payload{})
	sess.Analysis = Analysis{JobID: "job", Running: true}
	sess.SetAnalysisCancel(func() { cancelled = true })
	sess.Reset(nil)
	sess.Unlock()

	s.True(cancelled)
	s.Equal(Analysis{}, sess.Analysis)
	s.Equal(model.ScreenSplash, sess.Flow.Screen())
}

func (s *StoreSuite) TestPruneDropsIdleSessions() {
	old := s.store.Create()
	s.clock.Advance(45 * time.Minute)
	fresh := s.store.Create()
	s.clock.Advance(30 * time.Minute)

	ids := s.store.Prune()

	s.Equal([]string{old.ID}, ids)
	_, ok := s.store.Get(fresh.ID)
	s.True(ok)
	_, ok = s.store.Get(old.ID)
	s.False(ok)
}

func (s *StoreSuite) TestGetKeepsSessionAlive() {
	sess := s.store.Create()
	s.clock.Advance(50 * time.Minute)
	s.store.Get(sess.ID)
	s.clock.Advance(50 * time.Minute)

	s.Empty(s.store.Prune())
}

func (s *StoreSuite) TestPruneDisabled() {
	store := NewStore(Config{}, s.clock, testutil.NopLogger())
	store.Create()
	s.clock.Advance(1000 * time.Hour)

	s.Empty(store.Prune())
	s.Equal(1, store.Len())
}
