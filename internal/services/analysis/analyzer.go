// Package analysis simulates body photo analysis.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/model"
)

// DefaultDelay is how long a simulated analysis takes
const DefaultDelay = 3 * time.Second

// Notifier receives analysis notifications
type Notifier func(model.Notification)

// Analyzer runs simulated body photo analyses. At most one analysis runs per
// photo reference at a time.
type Analyzer struct {
	clock  clock.Clock
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	running map[string]string // photo ref -> job id
}

// New creates an Analyzer. A negative delay is treated as zero.
func New(clock clock.Clock, delay time.Duration, logger *slog.Logger) *Analyzer {
	if delay < 0 {
		delay = 0
	}
	return &Analyzer{
		clock:   clock,
		delay:   delay,
		logger:  logger.With(slog.String("component", "analysis")),
		running: make(map[string]string),
	}
}

// Analyze waits out the analysis delay and returns the body profile. It
// returns early with the context error if ctx is cancelled.
func (a *Analyzer) Analyze(ctx context.Context, photoRef string) (model.BodyProfile, error) {
	if strings.TrimSpace(photoRef) == "" {
		return model.BodyProfile{}, fmt.Errorf("%w: photo is required", model.ErrValidation)
	}

	select {
	case <-ctx.Done():
		return model.BodyProfile{}, ctx.Err()
	case <-a.clock.After(a.delay):
	}

	return result(), nil
}

// Start runs an analysis in the background and returns its job id. notify
// receives a started notification immediately and a complete or failed one
// when the analysis ends. A second Start for the same photo before the
// first finishes returns ErrAnalysisInProgress.
func (a *Analyzer) Start(ctx context.Context, photoRef string, notify Notifier) (string, error) {
	if strings.TrimSpace(photoRef) == "" {
		return "", fmt.Errorf("%w: photo is required", model.ErrValidation)
	}

	a.mu.Lock()
	if _, busy := a.running[photoRef]; busy {
		a.mu.Unlock()
		return "", model.ErrAnalysisInProgress
	}
	jobID := uuid.NewString()
	a.running[photoRef] = jobID
	a.mu.Unlock()

	a.logger.Info("analysis started",
		slog.String("job_id", jobID),
		slog.Duration("delay", a.delay),
	)
	notify(model.Notification{
		Type:      model.NotificationAnalysisStarted,
		Timestamp: a.clock.Now(),
		Payload:   jobID,
	})

	go func() {
		defer func() {
			a.mu.Lock()
			delete(a.running, photoRef)
			a.mu.Unlock()
		}()

		profile, err := a.Analyze(ctx, photoRef)
		if err != nil {
			a.logger.Warn("analysis failed",
				slog.String("job_id", jobID),
				slog.String("error", err.Error()),
			)
			notify(model.Notification{
				Type:      model.NotificationAnalysisFailed,
				Timestamp: a.clock.Now(),
				Payload:   model.AnalysisFailedPayload{JobID: jobID, Reason: err.Error()},
			})
			return
		}

		a.logger.Info("analysis complete", slog.String("job_id", jobID))
		notify(model.Notification{
			Type:      model.NotificationAnalysisComplete,
			Timestamp: a.clock.Now(),
			Payload:   model.AnalysisCompletePayload{JobID: jobID, Profile: profile},
		})
	}()

	return jobID, nil
}

// Running reports whether an analysis for photoRef is in progress
func (a *Analyzer) Running(photoRef string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.running[photoRef]
	return ok
}

func result() model.BodyProfile {
	return model.BodyProfile{
		BodyType: "애플형",
		Summary:  "상체에 볼륨이 있고 다리가 슬림한 체형이에요.",
		Suggestions: []string{
			"V넥 상의로 시선을 세로로 분산하기",
			"하이웨이스트 대신 미드라이즈 하의 선택하기",
			"슬림한 다리를 살리는 스트레이트 팬츠",
		},
	}
}
