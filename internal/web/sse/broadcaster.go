package sse

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// Broadcaster pushes notifications to the hub of their session
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// EventName maps a notification type to its SSE event name
func EventName(t model.NotificationType) string {
	return strings.ReplaceAll(string(t), "_", "-")
}

// eventData is the JSON body of a notification event
type eventData struct {
	Type      model.NotificationType `json:"type"`
	Timestamp string                 `json:"timestamp"`
	Screen    model.Screen           `json:"screen,omitempty"`
	Payload   any                    `json:"payload,omitempty"`
}

// Notify sends n to every client of n.SessionID. Sessions without a hub
// have nobody listening and are skipped.
func (b *Broadcaster) Notify(n model.Notification) {
	hub := b.hubManager.GetHub(n.SessionID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(eventData{
		Type:      n.Type,
		Timestamp: n.Timestamp.UTC().Format(time.RFC3339),
		Screen:    n.Screen,
		Payload:   n.Payload,
	})
	if err != nil {
		b.logger.Error("sse failed to encode notification",
			slog.String("session", n.SessionID),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(EventName(n.Type), string(data))
}

// ScreenChanged tells every tab of a session that the current screen moved
func (b *Broadcaster) ScreenChanged(sessionID string, screen model.Screen, at time.Time) {
	b.Notify(model.Notification{
		Type:      model.NotificationScreenChanged,
		Timestamp: at,
		SessionID: sessionID,
		Screen:    screen,
	})
}
