package middleware

import (
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLen = 128

	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// RequestIDMiddleware добавляет уникальный ID к каждому запросу и кладет в контекст логгер с этим ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, logrus.WithField("request_id", requestID))

		c.Next()
	}
}

// validRequestID отсекает пустые, слишком длинные и содержащие управляющие символы ID
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// GetRequestID возвращает ID текущего запроса
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger возвращает логгер запроса или стандартный, если middleware не подключен
func Logger(c *gin.Context) *logrus.Entry {
	if entry, ok := c.Get(loggerKey); ok {
		if e, ok := entry.(*logrus.Entry); ok {
			return e
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
