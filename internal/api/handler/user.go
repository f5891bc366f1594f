package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/api/request"
	"github.com/blackpdx/ggokka-ot/internal/api/response"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
)

// UserHandler handles account endpoints
type UserHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("잘못된 요청 형식입니다."))
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logFailure("login failed", err)
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponse{
		Success: true,
		Message: "로그인 성공",
		User:    response.UserFromModel(user),
	})
}

// Signup handles POST /api/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("잘못된 요청 형식입니다."))
		return
	}

	user, err := h.authService.Signup(r.Context(), auth.SignupRequest{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		AgeGroup:         req.AgeGroup,
		StylePreferences: req.StylePreferences,
	})
	if err != nil {
		h.logFailure("signup failed", err)
		WriteError(w, err)
		return
	}

	h.logger.Info("user signed up", slog.Int64("user_id", int64(user.ID)))
	response.JSON(w, http.StatusCreated, response.AuthResponse{
		Success: true,
		Message: "회원가입 성공",
		User:    response.UserFromModel(user),
	})
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		h.logFailure("list users failed", err)
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserSummariesFromModel(users))
}

func (h *UserHandler) logFailure(msg string, err error) {
	h.logger.Warn(msg, slog.String("error", err.Error()))
}
