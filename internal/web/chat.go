package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// handleChat answers one chat turn for the caller's session.
func (h *Handler) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "chat", "message is required")
		return
	}

	sid := sessionID(c)
	if !h.chatLimiter.Allow(sid) {
		h.metrics.RecordChatRequest("rate_limited", 0)
		h.respondError(c, http.StatusTooManyRequests, "chat", "too many messages, slow down")
		return
	}

	response := h.chat.Reply(c.Request.Context(), sid, req.Message)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

// handleChatHistory returns the caller's conversation log in
// chronological order.
func (h *Handler) handleChatHistory(c *gin.Context) {
	history, err := h.repo.ChatHistory(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondStorageError(c, "chat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
