package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/kea-exporter/kea-exporter/internal/config"
)

// basicAuth protects the metrics endpoint with HTTP basic authentication
// against a bcrypt password hash from the config.
func basicAuth(cfg config.AuthConfig, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !credentialsValid(cfg, user, pass) {
			logger.Warn("rejected metrics request", "remote", r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Basic realm="kea-exporter"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func credentialsValid(cfg config.AuthConfig, user, pass string) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(pass)) == nil
}
