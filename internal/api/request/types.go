package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	AgeGroup         *int     `json:"ageGroup,omitempty"`
	StylePreferences []string `json:"stylePreferences,omitempty"`
}
