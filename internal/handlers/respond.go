package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError sends a JSON error message with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logAndRespondError logs the underlying error and sends a generic message.
// Internal error details stay in the logs and are never echoed to clients.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", status).
		Msg(message)
	respondError(c, status, message)
}
