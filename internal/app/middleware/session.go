package middleware

import (
	"net/http"

	"storefront/internal/app/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionID"

// SessionMiddleware выдает посетителю cookie сессии просмотра.
// Cookie с некорректным значением заменяется новой.
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, id, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)

		c.Set(sessionIDKey, id)
		c.Set(loggerKey, Logger(c).WithField("session", id))

		c.Next()
	}
}

// GetSessionID извлекает ID сессии просмотра из контекста
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
