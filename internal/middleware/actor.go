package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the acting principal's ID in the Gin context.
const actorIDKey = contextKey("actorID")

// actorIDHeader identifies the acting principal on every mutating request.
// Authentication is handled upstream; the ledger only records attribution.
const actorIDHeader = "X-Actor-ID"

// defaultActorID attributes changes made without an explicit actor, such as
// automated postings from other services.
const defaultActorID = "system"

// ActorAttribution extracts the acting principal from the request headers
// and stores it in the Gin context for handlers to consume.
func ActorAttribution() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(actorIDHeader)
		if actorID == "" {
			actorID = defaultActorID
		}
		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting principal's ID from the Gin context.
func GetActorFromContext(c *gin.Context) string {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return defaultActorID
	}

	actorID, ok := actorIDVal.(string)
	if !ok || actorID == "" {
		return defaultActorID
	}

	return actorID
}
