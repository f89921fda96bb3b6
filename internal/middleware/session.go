package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// sessionCookieName is the cookie carrying the anonymous workbench session ID.
const sessionCookieName = "forge_session"

// sessionIDLength is the number of random bytes in a session ID.
const sessionIDLength = 32

// sessionKey is the Echo context key the resolved session ID is stored under.
const sessionKey = "workbench_session"

// Session returns middleware that guarantees every request carries an
// anonymous session ID cookie. The ID keys the caller's workbench state in
// Redis; there are no accounts, so the cookie is the entire identity. The
// cookie lifetime matches the Redis TTL -- when either expires the workbench
// starts blank.
func Session(ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if cookie, err := req.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				c.Set(sessionKey, cookie.Value)
				return next(c)
			}

			id, err := randomToken(sessionIDLength)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate session ID")
			}

			c.SetCookie(&http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https",
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionKey, id)

			return next(c)
		}
	}
}

// SessionID returns the workbench session ID resolved by the Session
// middleware, or empty if the middleware did not run.
func SessionID(c echo.Context) string {
	if id, ok := c.Get(sessionKey).(string); ok {
		return id
	}
	return ""
}
