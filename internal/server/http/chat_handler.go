package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"saathi/internal/logging"
	"saathi/internal/observability"
	"saathi/internal/server/app"
)

// ChatHandler serves the conversational endpoints, including the websocket
// transport.
type ChatHandler struct {
	chat     *app.ChatService
	metrics  *observability.MetricsCollector
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewChatHandler constructs the chat handler.
func NewChatHandler(chat *app.ChatService, metrics *observability.MetricsCollector) *ChatHandler {
	return &ChatHandler{
		chat:    chat,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin is enforced by the CORS layer in front of the upgrade.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logging.NewComponentLogger("ChatHandler"),
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *gin.Context) {
	user, _ := currentUser(c)
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "message is required")
		return
	}
	resp, err := h.chat.ProcessMessage(c.Request.Context(), user.ID, req.Message)
	if err != nil {
		h.logger.Error("process message for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	respondOK(c, resp)
}

// History handles GET /api/chat/history?limit=N.
func (h *ChatHandler) History(c *gin.Context) {
	user, _ := currentUser(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	turns, err := h.chat.History(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.logger.Error("load history for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	respondOK(c, turns)
}

type wsOutbound struct {
	Reply           string `json:"reply"`
	Language        string `json:"language"`
	ActionPerformed bool   `json:"action_performed"`
	Error           string `json:"error,omitempty"`
}

// Stream handles GET /api/chat/ws. Each inbound JSON frame is one user
// utterance; each outbound frame is the agent's reply.
func (h *ChatHandler) Stream(c *gin.Context) {
	user, _ := currentUser(c)
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed for user %d: %v", user.ID, err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx := c.Request.Context()
	h.metrics.WSClientConnected(ctx, 1)
	defer h.metrics.WSClientConnected(ctx, -1)
	h.logger.Info("websocket client connected: user %d", user.ID)

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read for user %d: %v", user.ID, err)
			}
			return
		}

		resp, err := h.chat.ProcessMessage(ctx, user.ID, req.Message)
		out := wsOutbound{
			Reply:           resp.Reply,
			Language:        resp.Language,
			ActionPerformed: resp.ActionPerformed,
		}
		if err != nil {
			h.logger.Error("process websocket message for user %d: %v", user.ID, err)
			out = wsOutbound{Error: "internal error"}
		}
		if err := conn.WriteJSON(out); err != nil {
			h.logger.Warn("websocket write for user %d: %v", user.ID, err)
			return
		}
	}
}
