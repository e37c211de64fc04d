package middleware

import (
	"errors"
	"net/http"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/session"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"github.com/gin-gonic/gin"
)

// Auth resolves the session cookie and puts the current user into the gin
// context. The cookie is the only accepted credential carrier; tokens in
// headers or query strings are not honored, so page scripts never see one.
func Auth(sessions *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			util.Fail(c, http.StatusUnauthorized, "")
			c.Abort()
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				util.Fail(c, http.StatusUnauthorized, "")
			} else {
				util.Fail(c, http.StatusInternalServerError, "Server error")
			}
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}
