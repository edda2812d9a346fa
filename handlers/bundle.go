package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zyppr/services/assistant"
	"zyppr/services/business"
	"zyppr/services/storage"
	"zyppr/services/user"
)

// HandlerBundle groups the services every endpoint handler draws from.
type HandlerBundle struct {
	Users         user.UserService
	Businesses    business.BusinessService
	Assistant     assistant.Service
	Storage       storage.StorageService
	Conversations *assistant.RedisConversationStore
}

// getLogger retrieves a Zap logger from the Gin context or creates a new one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	logger, _ := zap.NewProduction()
	return logger
}
