package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case []UserSummary:
		o.printUsers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /api/signup
type SignupRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	AgeGroup         *int     `json:"ageGroup,omitempty"`
	StylePreferences []string `json:"stylePreferences,omitempty"`
}

// User response type (matches API)
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult is the response of login and signup
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UserSummary is one entry of the user list
type UserSummary struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	AgeGroup         *int      `json:"ageGroup"`
	StylePreferences []string  `json:"stylePreferences"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	_, _ = fmt.Fprintln(o.w, a.Message)
	_, _ = fmt.Fprintf(o.w, "User: %s <%s> (%d)\n", a.User.Name, a.User.Email, a.User.ID)
}

func (o *Output) printUsers(users []UserSummary) {
	_, _ = fmt.Fprintf(o.w, "Users (%d):\n", len(users))
	for _, u := range users {
		age := "-"
		if u.AgeGroup != nil {
			age = strconv.Itoa(*u.AgeGroup)
		}
		styles := "-"
		if len(u.StylePreferences) > 0 {
			styles = strings.Join(u.StylePreferences, ", ")
		}
		_, _ = fmt.Fprintf(o.w, "  %d  %s <%s>  age: %s  styles: %s  joined: %s\n",
			u.ID, u.Name, u.Email, age, styles, u.CreatedAt.Format("2006-01-02"))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
