package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// ActorIDHeader carries the authenticated identity resolved by the
	// gateway in front of this service.
	ActorIDHeader = "X-User-ID"

	// ActorIDKey is the gin context key holding the acting identity.
	ActorIDKey = "actor_id"

	// FallbackActorID attributes mutations made without an
	// authenticated identity. Applied here at the boundary only; use
	// cases always receive an explicit actor.
	FallbackActorID = "system"
)

// ActorMiddleware resolves the acting identity for audit attribution.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorIDHeader)
		if actorID == "" {
			actorID = FallbackActorID
		}
		c.Set(ActorIDKey, actorID)
		c.Next()
	}
}

// ActorID reads the acting identity stored by ActorMiddleware.
func ActorID(c *gin.Context) string {
	if actorID, exists := c.Get(ActorIDKey); exists {
		if id, ok := actorID.(string); ok && id != "" {
			return id
		}
	}
	return FallbackActorID
}
