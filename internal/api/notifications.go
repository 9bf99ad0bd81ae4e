package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": s.feed.List(),
		"unread":        s.feed.UnreadCount(),
	})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	s.feed.MarkRead(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleNotificationStream upgrades to a websocket and pushes every
// notification published after the connection opened.
func (s *Server) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ch, cancel := s.feed.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case n := <-ch:
			if err := wsjson.Write(ctx, conn, n); err != nil {
				slog.Warn("websocket write failed", "error", err)
				return
			}
		}
	}
}
