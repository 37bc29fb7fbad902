package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/formfighter/ringside/internal/services/challenge"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The mobile client connects from a custom scheme, not a browser origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamUpdates upgrades the connection and pushes one JSON snapshot
// per service publish until the client disconnects.
func (h *Handler) streamUpdates(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	// Register the observer first so the initial snapshot published by
	// StartListening lands in this connection's buffer. Cancel tears the
	// user's store subscription down once the last connection is gone.
	snapshots, cancel := h.svc.Subscribe(userID)
	defer cancel()

	if err := h.svc.StartListening(c.Request.Context(), &challenge.StartListeningInput{
		UserID: userID,
	}); err != nil {
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		return
	}
	defer conn.Close()

	// Reader goroutine: we only care about the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				log.Printf("httpapi: failed to write snapshot for user %s: %v", userID, err)
				return
			}
		case <-closed:
			return
		}
	}
}
