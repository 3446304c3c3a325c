package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/models"
	"github.com/jackpyp/massage-shop-web/internal/session"
)

const (
	ContextUser  = "currentUser"
	ContextToken = "apiToken"

	LoginRoute = "/auth"
)

// Identity is the one platform call the session bootstrap needs.
type Identity interface {
	Me(ctx context.Context, token string) (*models.User, error)
}

// RequireSession resolves the session cookie to a bearer token, fetches the
// profile behind it, and puts both in the request context. Every failure —
// missing cookie, dead session, network outage, expired token, server error
// — looks the same to the visitor: one redirect to the login page, and no
// page data is fetched.
func RequireSession(mgr *session.Manager, ident Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := mgr.Token(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, LoginRoute)
			c.Abort()
			return
		}

		user, err := ident.Me(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, LoginRoute)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, token)

		c.Next()
	}
}

// CurrentUser pulls the bootstrapped profile out of the gin context.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func Token(c *gin.Context) string {
	return c.GetString(ContextToken)
}

// RequireAdmin hides admin pages from non-admins. This is an affordance,
// not a security boundary: the platform API owns authorization.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
