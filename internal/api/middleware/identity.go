package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gemchat-backend/internal/services"
)

const (
	usernameCookie = "gemchat_username"
	emailCookie    = "gemchat_email"
)

// Identity resolves a trusted (username, email) pair from the login cookies
// or the X-Username/X-Email headers into a user id on the gin context.
// Requests without a pair pass through anonymously; chat still works for
// them, it just persists nothing.
func Identity(users services.UserService, l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, email := identityPair(c)
		if username == "" || email == "" {
			c.Next()
			return
		}

		user, err := users.Resolve(c.Request.Context(), username, email)
		if err != nil {
			l.WithError(err).WithField("username", username).Warn("identity resolution failed")
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

func identityPair(c *gin.Context) (string, string) {
	username, email := c.GetHeader("X-Username"), c.GetHeader("X-Email")
	if username != "" && email != "" {
		return username, email
	}

	if v, err := c.Cookie(usernameCookie); err == nil {
		if u, err := url.QueryUnescape(v); err == nil {
			username = u
		}
	}
	if v, err := c.Cookie(emailCookie); err == nil {
		if e, err := url.QueryUnescape(v); err == nil {
			email = e
		}
	}
	return username, email
}

// SetIdentityCookies stores the pair after a successful login.
func SetIdentityCookies(c *gin.Context, username, email string) {
	c.SetCookie(usernameCookie, url.QueryEscape(username), 0, "/", "", false, true)
	c.SetCookie(emailCookie, url.QueryEscape(email), 0, "/", "", false, true)
}

// ClearIdentityCookies removes the pair on logout.
func ClearIdentityCookies(c *gin.Context) {
	c.SetCookie(usernameCookie, "", -1, "/", "", false, true)
	c.SetCookie(emailCookie, "", -1, "/", "", false, true)
}
