package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
)

type AnalyzerSuite struct {
	suite.Suite
	clock    *mocks.MockClock
	analyzer *Analyzer
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func (s *AnalyzerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.analyzer = New(s.clock, DefaultDelay, testutil.NopLogger())
}

func (s *AnalyzerSuite) waitForTimer() {
	s.Require().Eventually(func() bool { return s.clock.Waiters() == 1 }, time.Second, time.Millisecond)
}

func (s *AnalyzerSuite) TestAnalyzeWaitsForDelay() {
	done := make(chan model.BodyProfile, 1)
	go func() {
		profile, err := s.analyzer.Analyze(context.Background(), "photo.jpg")
		s.NoError(err)
		done <- profile
	}()

	s.waitForTimer()
	s.clock.Advance(2 * time.Second)
	s.Never(func() bool { return len(done) > 0 }, 20*time.Millisecond, time.Millisecond)

	s.clock.Advance(time.Second)
	select {
	case profile := <-done:
		s.Equal("애플형", profile.BodyType)
		s.NotEmpty(profile.Suggestions)
	case <-time.After(time.Second):
		s.Fail("analysis did not complete")
	}
}

func (s *AnalyzerSuite) TestAnalyzeHonoursCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := s.analyzer.Analyze(ctx, "photo.jpg")
		errs <- err
	}()

	s.waitForTimer()
	cancel()

	select {
	case err := <-errs:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("analysis ignored cancellation")
	}
}

func (s *AnalyzerSuite) TestAnalyzeRequiresPhoto() {
	_, err := s.analyzer.Analyze(context.Background(), " ")
	s.ErrorIs(err, model.ErrValidation)
}

func (s *AnalyzerSuite) TestStartNotifiesCompletion() {
	notes := make(chan model.Notification, 4)

	jobID, err := s.analyzer.Start(context.Background(), "photo.jpg", func(n model.Notification) { notes <- n })
	s.Require().NoError(err)
	s.NotEmpty(jobID)

	started := <-notes
	s.Equal(model.NotificationAnalysisStarted, started.Type)
	s.Equal(jobID, started.Payload)
	s.True(s.analyzer.Running("photo.jpg"))

	s.waitForTimer()
	s.clock.Advance(DefaultDelay)

	select {
	case n := <-notes:
		s.Equal(model.NotificationAnalysisComplete, n.Type)
		payload, ok := n.Payload.(model.AnalysisCompletePayload)
		s.Require().True(ok)
		s.Equal(jobID, payload.JobID)
		s.Equal("애플형", payload.Profile.BodyType)
	case <-time.After(time.Second):
		s.Fail("no completion notification")
	}
	s.Eventually(func() bool { return !s.analyzer.Running("photo.jpg") }, time.Second, time.Millisecond)
}

func (s *AnalyzerSuite) TestStartRejectsConcurrentRun() {
	_, err := s.analyzer.Start(context.Background(), "photo.jpg", func(model.Notification) {})
	s.Require().NoError(err)

	_, err = s.analyzer.Start(context.Background(), "photo.jpg", func(model.Notification) {})
	s.ErrorIs(err, model.ErrAnalysisInProgress)

	_, err = s.analyzer.Start(context.Background(), "other.jpg", func(model.Notification) {})
	s.NoError(err)
}

func (s *AnalyzerSuite) TestStartNotifiesFailureOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	notes := make(chan model.Notification, 4)

	jobID, err := s.analyzer.Start(ctx, "photo.jpg", func(n model.Notification) { notes <- n })
	s.Require().NoError(err)
	<-notes

	s.waitForTimer()
	cancel()

	select {
	case n := <-notes:
		s.Equal(model.NotificationAnalysisFailed, n.Type)
		payload, ok := n.Payload.(model.AnalysisFailedPayload)
		s.Require().True(ok)
		s.Equal(jobID, payload.JobID)
	case <-time.After(time.Second):
		s.Fail("no failure notification")
	}
}

func (s *AnalyzerSuite) TestZeroDelayCompletesImmediately() {
	a := New(s.clock, -time.Second, testutil.NopLogger())
	profile, err := a.Analyze(context.Background(), "photo.jpg")
	s.Require().NoError(err)
	s.Equal("애플형", profile.BodyType)
}
