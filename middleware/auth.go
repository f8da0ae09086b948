package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/liamesika/adconnect/userctx"
)

// RequireAuth ensures the request carries an authenticated session.
// The session user ID is injected into the request context for handlers.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, ok := sess.Get("user_id").(string)

		if !ok || userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "authentication required"}`))
			return
		}

		ctx := userctx.SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
