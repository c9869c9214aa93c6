package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tiew/internal/i18n"
)

const (
	VisitorCookie = "tiew_visitor"
	visitorMaxAge = 365 * 24 * 60 * 60

	visitorIDKey = "visitor_id"
	localeKey    = "locale"
)

// LocaleFactory builds the translation store for one visitor.
type LocaleFactory func(ctx context.Context, visitorID string) *i18n.Store

// VisitorMiddleware identifies the browser by cookie, issuing one on first
// visit, and attaches that visitor's translation store to the context.
func VisitorMiddleware(newLocale LocaleFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(VisitorCookie)
		if _, parseErr := uuid.Parse(visitorID); err != nil || parseErr != nil {
			visitorID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, visitorID, visitorMaxAge, "/", "", false, true)
		}

		c.Set(visitorIDKey, visitorID)
		c.Set(localeKey, newLocale(c.Request.Context(), visitorID))
		c.Next()
	}
}

func VisitorID(c *gin.Context) string {
	return c.GetString(visitorIDKey)
}

// Locale returns the store attached by VisitorMiddleware, or nil.
func Locale(c *gin.Context) *i18n.Store {
	v, ok := c.Get(localeKey)
	if !ok {
		return nil
	}
	store, _ := v.(*i18n.Store)
	return store
}
