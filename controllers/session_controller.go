package controllers

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"
)

// SessionController manages the login session. Identity here is deliberately
// thin: the surrounding product authenticates users upstream, this service
// only needs a stable user ID in the session cookie.
type SessionController struct{}

// NewSessionController creates a new session controller
func NewSessionController() *SessionController {
	return &SessionController{}
}

// Login handles POST /login
func (c *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	sess := session.GetSession(r)
	sess.Set("user_id", body.UserID)

	respondJSON(w, http.StatusOK, map[string]string{"user_id": body.UserID})
}

// Logout handles POST /logout
func (c *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")

	respondJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}
