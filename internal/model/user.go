package model

import (
	"regexp"
	"time"
)

// UserID uniquely identifies a registered user. Assigned by the store.
type UserID int64

// User is a registered account
type User struct {
	ID               UserID
	Name             string
	Email            string // normalised to lower case
	PasswordHash     string // bcrypt hash
	AgeGroup         *int   // 10, 20, 30, 40 or 50 (50 and over)
	StylePreferences []string
	CreatedAt        time.Time
}

// AgeGroups lists the selectable age groups.
func AgeGroups() []int {
	return []int{10, 20, 30, 40, 50}
}

// ValidAgeGroup reports whether g is a selectable age group.
func ValidAgeGroup(g int) bool {
	for _, known := range AgeGroups() {
		if g == known {
			return true
		}
	}
	return false
}

// AgeGroupLabel returns the display label for an age group.
func AgeGroupLabel(g int) string {
	switch g {
	case 10:
		return "10대"
	case 20:
		return "20대"
	case 30:
		return "30대"
	case 40:
		return "40대"
	case 50:
		return "50대 이상"
	default:
		return ""
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email looks like user@example.com.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
