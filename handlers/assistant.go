package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zyppr/models"
	"zyppr/services/assistant"
)

// conversationLocks serializes assistant turns per user. A second message
// while one is in flight is rejected, not queued.
var conversationLocks sync.Map

func lockConversation(userID string) (func(), bool) {
	mu, _ := conversationLocks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	if !m.TryLock() {
		return nil, false
	}
	return m.Unlock, true
}

// ChatHandler runs one assistant turn: interpret the message against the
// business context, reconcile accepted mutations, and return the
// structured response. The gateway guarantees a schema-conformant value
// even when the model call fails.
func (h *HandlerBundle) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString("userID")
	unlock, ok := lockConversation(userID)
	if !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "A previous message is still being processed"})
		return
	}
	defer unlock()

	ctx := c.Request.Context()

	biz, err := h.Businesses.GetByID(ctx, req.BusinessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if h.Conversations != nil {
		state := &assistant.ConversationState{BusinessID: req.BusinessID, LastTurnAt: time.Now().UTC()}
		if err := h.Conversations.Set(ctx, userID, state); err != nil {
			getLogger(c).Warn("failed to record conversation state", zap.Error(err))
		}
	}

	resp := h.Assistant.Interpret(ctx, req.Message, u.Role, *biz, u)

	// Demo tenants have no durable record to reconcile into, and a business
	// deleted while the model call was in flight makes the turn stale.
	if resp != nil && resp.Status == "success" && !biz.IsDemo {
		if _, err := h.Businesses.GetByID(ctx, req.BusinessID); err == nil {
			if err := h.Businesses.Reconcile(ctx, req.BusinessID, resp); err != nil {
				getLogger(c).Error("reconciliation failed",
					zap.String("businessID", req.BusinessID), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
