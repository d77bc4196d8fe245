package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/savaneats/savan/internal/adapter/logger"
)

type contextKey string

const customerIDKey contextKey = "customer_id"

// TokenParser resolves a bearer token to the customer id it was issued
// for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			duration := time.Since(start)
			logger.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"duration_ms": duration.Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic_recovered", "Panic recovered", uuid.NewString(), nil, fmt.Errorf("%v", err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityMiddleware resolves the calling customer. A valid bearer
// token wins; otherwise the X-Customer-ID header is taken as an
// anonymous device id, so carts and favorites work before login.
func IdentityMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerID := ""

			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				if id, err := parser.ParseToken(strings.TrimPrefix(auth, "Bearer ")); err == nil {
					customerID = id
				}
			}
			if customerID == "" {
				customerID = r.Header.Get("X-Customer-ID")
			}

			if customerID == "" {
				http.Error(w, "Missing customer identity", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), customerIDKey, customerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CustomerID returns the identity set by IdentityMiddleware.
func CustomerID(ctx context.Context) string {
	id, _ := ctx.Value(customerIDKey).(string)
	return id
}
