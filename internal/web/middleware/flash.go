package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/web/templates/layout"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash sets a flash message to be displayed on the next request
func SetFlash(w http.ResponseWriter, flashType, message string) {
	writeFlash(w, flashType, message)
}

// SetFlashOffer sets a flash message that offers firing a flow event as its
// next step, such as signing up after a failed login
func SetFlashOffer(w http.ResponseWriter, flashType, message string, offer model.Event, label string) {
	writeFlash(w, flashType+";"+string(offer)+";"+label, message)
}

func writeFlash(w http.ResponseWriter, head, message string) {
	// Cookie values must be ASCII, so head:message is base64 encoded
	value := base64.RawURLEncoding.EncodeToString([]byte(head + ":" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60, // 1 minute expiry
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	head, message, ok := strings.Cut(string(raw), ":")
	if !ok {
		// No separator, treat the whole value as an info message
		return &layout.FlashMessage{Type: "info", Message: head}
	}
	flash := &layout.FlashMessage{Message: message}
	parts := strings.SplitN(head, ";", 3)
	flash.Type = parts[0]
	if len(parts) == 3 {
		flash.Offer, flash.OfferLabel = parts[1], parts[2]
	}
	return flash
}
