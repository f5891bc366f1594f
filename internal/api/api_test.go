package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blackpdx/ggokka-ot/internal/api"
	"github.com/blackpdx/ggokka-ot/internal/api/apierr"
	"github.com/blackpdx/ggokka-ot/internal/api/middleware"
	"github.com/blackpdx/ggokka-ot/internal/api/response"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/storage/memory"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	clock   *mocks.MockClock
}

func newTestServer(t *testing.T, limit middleware.RateLimitConfig) *testServer {
	t.Helper()

	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	authService := auth.New(store, clk, auth.Config{BcryptCost: bcrypt.MinCost})

	router := api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		AuthService: authService,
		Clock:       clk,
		RateLimit:   limit,
		CORSOrigins: []string{"http://localhost:19006"},
	})

	return &testServer{handler: router, storage: store, clock: clk}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) signup(t *testing.T, name, email, password string) response.AuthResponse {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/signup", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.ErrorResponse {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestLiveness(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "정상 작동")
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestSignupAndLogin(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	signupResp := ts.signup(t, "Kim", "Kim@Example.com", "secret1!")
	assert.True(t, signupResp.Success)
	assert.Equal(t, "Kim", signupResp.User.Name)
	assert.Equal(t, "kim@example.com", signupResp.User.Email)
	assert.NotZero(t, signupResp.User.ID)

	rr := ts.request(http.MethodPost, "/api/login", map[string]string{
		"email":    "kim@example.com",
		"password": "secret1!",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.True(t, loginResp.Success)
	assert.Equal(t, signupResp.User, loginResp.User)
}

func TestSignupStoresProfileFields(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodPost, "/api/signup", map[string]any{
		"name":             "Lee",
		"email":            "lee@example.com",
		"password":         "secret1!",
		"ageGroup":         20,
		"stylePreferences": []string{"미니멀", "캐주얼"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	user, err := ts.storage.GetUserByEmail(t.Context(), "lee@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.AgeGroup)
	assert.Equal(t, 20, *user.AgeGroup)
	assert.Equal(t, []string{"미니멀", "캐주얼"}, user.StylePreferences)
	assert.NotEqual(t, "secret1!", user.PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})
	ts.signup(t, "Kim", "kim@example.com", "secret1!")

	rr := ts.request(http.MethodPost, "/api/signup", map[string]string{
		"name":     "Other",
		"email":    "KIM@example.com",
		"password": "other12!",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	resp := decodeError(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, apierr.CodeEmailExists, resp.Code)
	assert.NotEmpty(t, resp.Message)
}

func TestSignupValidation(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	cases := map[string]map[string]any{
		"missing name":  {"email": "a@b.com", "password": "secret1!"},
		"bad email":     {"name": "A", "email": "not-an-email", "password": "secret1!"},
		"bad age group": {"name": "A", "email": "a@b.com", "password": "secret1!", "ageGroup": 35},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/signup", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, decodeError(t, rr).Success)
		})
	}
}

func TestSignupPasswordTooLong(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodPost, "/api/signup", map[string]string{
		"name":     "Kim",
		"email":    "kim@example.com",
		"password": strings.Repeat("a", 73),
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodePasswordTooLong, decodeError(t, rr).Code)

	users, err := ts.storage.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoginFailures(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})
	ts.signup(t, "Kim", "kim@example.com", "secret1!")

	rr := ts.request(http.MethodPost, "/api/login", map[string]string{"email": "kim@example.com", "password": "wrong12!"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCredentials, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "/api/login", map[string]string{"email": "a@b.com", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/login", map[string]string{"email": "kim@example.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeMissingFields, decodeError(t, rr).Code)
}

func TestMalformedJSON(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestListUsersOmitsPassword(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})
	ts.signup(t, "Kim", "kim@example.com", "secret1!")
	ts.signup(t, "Lee", "lee@example.com", "secret1!")

	rr := ts.request(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")

	var users []response.UserSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Kim", users[0].Name)
	assert.Equal(t, "Lee", users[1].Name)
	assert.Equal(t, []string{}, users[0].StylePreferences)
}

func TestListUsersEmpty(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRateLimitOnAuthEndpoints(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{PerMinute: 1, Burst: 2})
	body := map[string]string{"email": "a@b.com", "password": "secret1!"}

	assert.Equal(t, http.StatusUnauthorized, ts.request(http.MethodPost, "/api/login", body).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.request(http.MethodPost, "/api/login", body).Code)

	rr := ts.request(http.MethodPost, "/api/login", body)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, apierr.CodeRateLimited, decodeError(t, rr).Code)

	// Listing is not limited
	assert.Equal(t, http.StatusOK, ts.request(http.MethodGet, "/api/users", nil).Code)

	ts.clock.Advance(time.Minute)
	assert.Equal(t, http.StatusUnauthorized, ts.request(http.MethodPost, "/api/login", body).Code)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:19006", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, middleware.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
