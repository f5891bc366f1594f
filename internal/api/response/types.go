package response

import (
	"time"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// User is the public part of a user returned by login and signup
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFromModel converts a model.User
func UserFromModel(u *model.User) User {
	return User{
		ID:    int64(u.ID),
		Name:  u.Name,
		Email: u.Email,
	}
}

// AuthResponse is the response for login and signup
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UserSummary is one entry of the user list. It never carries the password hash.
type UserSummary struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	AgeGroup         *int      `json:"ageGroup"`
	StylePreferences []string  `json:"stylePreferences"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UserSummaryFromModel converts a model.User
func UserSummaryFromModel(u *model.User) UserSummary {
	prefs := u.StylePreferences
	if prefs == nil {
		prefs = []string{}
	}
	return UserSummary{
		ID:               int64(u.ID),
		Name:             u.Name,
		Email:            u.Email,
		AgeGroup:         u.AgeGroup,
		StylePreferences: prefs,
		CreatedAt:        u.CreatedAt,
	}
}

// UserSummariesFromModel converts a list of users
func UserSummariesFromModel(users []*model.User) []UserSummary {
	out := make([]UserSummary, len(users))
	for i, u := range users {
		out[i] = UserSummaryFromModel(u)
	}
	return out
}

// Health is the response of the health check
type Health struct {
	Status string `json:"status"`
}
