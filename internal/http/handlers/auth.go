package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync/internal/http/middleware"
	"skillsync/internal/schema"
	"skillsync/internal/storage"
)

// Login syncs the identity the front end resolved upstream into our users
// table (find-or-create by email), starts a cookie session and returns a
// bearer token for non-browser clients.
func (h *Handler) Login(c *gin.Context) {
	var in schema.UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid login data", err)
		return
	}

	ctx := c.Request.Context()

	user, err := h.Store.GetUserByEmail(ctx, v.Email)
	if errors.Is(err, storage.ErrNotFound) {
		user, err = h.Store.CreateUser(ctx, v)
		if errors.Is(err, storage.ErrEmailTaken) {
			// Lost a create race; the row exists now.
			user, err = h.Store.GetUserByEmail(ctx, v.Email)
		}
	}
	if err != nil {
		storageError(c, "login", err)
		return
	}

	token, err := h.Sessions.Create(ctx, user.ID)
	if err != nil {
		storageError(c, "create session", err)
		return
	}
	bearer, err := h.Tokens.Issue(user.ID)
	if err != nil {
		storageError(c, "issue token", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.SessionTTL.Seconds()), "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": bearer})
}

// Logout destroys the session, if any, and clears the cookie. Always 204:
// logging out twice is not an error.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.Sessions.Delete(c.Request.Context(), token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.SecureCookie, true)
	c.Status(http.StatusNoContent)
}
