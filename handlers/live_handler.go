package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/bamacgabhann/county-competitions/live"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients come from the public league-table pages.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveHandler struct {
	hub    *live.Hub
	logger *slog.Logger
}

func NewLiveHandler(hub *live.Hub, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection and joins the division's standings
// room. The client receives a message every time a cascade commits.
func (h *LiveHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	divisionID, err := strconv.Atoi(chi.URLParam(r, "divisionID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid division ID")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	h.hub.Serve(conn, divisionID)
}
