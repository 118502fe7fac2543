package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/service"
)

// Constants for context keys
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
	ContextLoggerKey   = "logger"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Messages of the three ways a protected request can be refused.
const (
	msgNoCredential      = "no credential"
	msgInvalidCredential = "invalid credential"
	msgUnknownSubject    = "unknown subject"
)

// AuthMiddleware resolves the bearer token to a live user and stores its id
// and username in the context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, msgNoCredential)
			return
		}

		// Expecting "Bearer <token>"
		scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			abortWithError(c, http.StatusUnauthorized, msgNoCredential)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			abortWithError(c, http.StatusUnauthorized, msgInvalidCredential)
			return
		case errors.Is(err, service.ErrUnknownSubject):
			abortWithError(c, http.StatusUnauthorized, msgUnknownSubject)
			return
		case err != nil:
			respondWithServiceError(c, err)
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUsernameKey, user.Username)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (int, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	id, ok := idRaw.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return id, nil
}

// currentUserID writes a 500 and returns false when the auth middleware did
// not run for this route.
func currentUserID(c *gin.Context) (int, bool) {
	id, err := getUserIDFromContext(c)
	if err != nil {
		requestLogger(c).WithError(err).Error("protected route without identity")
		abortWithError(c, http.StatusInternalServerError, msgInternal)
		return 0, false
	}
	return id, true
}

// paramID parses a numeric path parameter, answering 400 when it is not one.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// RequestLogger logs one line per request and exposes a request scoped
// logger to handlers.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		entry := log.WithField("requestId", requestID)
		c.Set(ContextLoggerKey, entry)

		c.Next()

		status := c.Writer.Status()
		fields := entry.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		})
		switch {
		case status >= http.StatusInternalServerError:
			fields.Error("request failed")
		case status >= http.StatusBadRequest:
			fields.Warn("request rejected")
		default:
			fields.Info("request handled")
		}
	}
}

func requestLogger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(ContextLoggerKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return logrus.StandardLogger()
}
