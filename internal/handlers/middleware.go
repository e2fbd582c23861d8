package handlers

import (
	"net/http"
	"strings"

	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID      = "userId"
	ctxHouseholdID = "householdId"

	// Browsers cannot set headers on a websocket handshake.
	tokenQueryParam = "access_token"
)

func (h *Handler) identityMiddleware(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, id.UserID)
	c.Set(ctxHouseholdID, id.HouseholdID)
	c.Next()
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if t := c.Query(tokenQueryParam); t != "" {
			return t, true
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return "", false
	}
	return parts[1], true
}

// identity reads what identityMiddleware stored for the request.
func identity(c *gin.Context) service.Identity {
	return service.Identity{
		UserID:      c.GetInt(ctxUserID),
		HouseholdID: c.GetInt(ctxHouseholdID),
	}
}
