package handler

import (
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/api/response"
)

// Liveness handles GET /
func Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("✅ API 서버 정상 작동"))
}

// Health handles GET /api/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
