package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/liamesika/adconnect/models"
	"github.com/liamesika/adconnect/repositories"
	"github.com/liamesika/adconnect/userctx"
)

// statusRecorder captures the response status code for the audit entry
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// AuditLogger middleware records mutating OAuth requests and whether they
// succeeded. Only the action and platform are captured; query strings and
// bodies are not, so authorization codes and tokens never reach the audit
// trail.
func AuditLogger(auditRepo repositories.AuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method != http.MethodPost && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			platform, action := classifyRequest(r.Method, r.URL.Path)
			entry := &models.AuditLogEntry{
				UserID:    userctx.GetUserID(r.Context()),
				Platform:  platform,
				Action:    action,
				Success:   rec.status < http.StatusBadRequest,
				UserAgent: r.UserAgent(),
				IPAddress: getIPAddress(r),
			}

			// Log asynchronously to avoid blocking request
			go func() {
				err := auditRepo.Create(entry)
				if err != nil {
					log.Printf("Failed to create audit log: %v", err)
				}
			}()
		})
	}
}

// classifyRequest derives the platform and lifecycle action from an OAuth
// route like /api/oauth/{platform}/{action}. A bare-platform DELETE is the
// revoke endpoint.
func classifyRequest(method, path string) (platform, action string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "oauth" && i+1 < len(parts) {
			platform = parts[i+1]
			if i+2 < len(parts) {
				action = parts[i+2]
			} else if method == http.MethodDelete {
				action = "revoke"
			}
			return platform, action
		}
	}
	return "", ""
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
