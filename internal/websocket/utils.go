package websocket

import (
	"net/http"
	"slices"

	"codeberg.org/solari/bff/internal/logger"
	"github.com/google/uuid"
)

// builds an origin check: everything outside production, the allow-list inside it
func CheckOrigin(allowedOrigins []string, production bool) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if !production {
			return true
		}

		origin := r.Header.Get("Origin")
		if origin == "" {
			logger.Warn("websocket connection with no origin header")
			return false
		}

		if len(allowedOrigins) == 0 {
			logger.Warn("websocket origin rejected - CORS_ALLOWED_ORIGINS not configured",
				"origin", origin,
			)
			return false
		}

		if slices.Contains(allowedOrigins, origin) {
			return true
		}

		logger.Warn("websocket origin rejected - not in allowed origins",
			"origin", origin,
		)

		return false
	}
}

func GenerateClientID() string {
	return uuid.NewString()
}
