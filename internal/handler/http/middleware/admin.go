package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

const adminSecretHeader = "X-Admin-Secret"

// AdminOnly gates the reporting surface behind the configured shared secret.
// The gate is a plain constant-time comparison; there are no accounts, roles
// or tokens behind it.
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(adminSecretHeader)
			if supplied == "" {
				response.Unauthorized(w, "Admin secret required")
				return
			}

			if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
				response.Unauthorized(w, "Invalid admin secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
