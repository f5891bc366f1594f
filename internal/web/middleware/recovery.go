package middleware

import (
	"log/slog"
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="ko">
<head><meta charset="utf-8"><title>오류 | 꼬까옷</title></head>
<body>
<h1>서버 오류</h1>
<p>문제가 발생했어요. 잠시 후 다시 시도해주세요.</p>
<p><a href="/app">처음으로</a></p>
</body>
</html>`))
}
