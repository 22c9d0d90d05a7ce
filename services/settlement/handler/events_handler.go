package handler

import (
	"net/http"
	"strconv"

	"marketplace-settlement/internal/events"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const defaultEventLimit = 100

// EventLog is the readable side of the settlement event log
type EventLog interface {
	Recent(n int) []events.Event
}

type EventsHandler struct {
	log      EventLog
	hub      *events.Hub
	upgrader websocket.Upgrader
}

func NewEventsHandler(log EventLog, hub *events.Hub) *EventsHandler {
	return &EventsHandler{
		log: log,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// indexers connect from arbitrary origins
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RecentEventsHandler handles GET /events?limit=
func (h *EventsHandler) RecentEventsHandler(c *gin.Context) {
	limit := defaultEventLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONResponse(c, http.StatusBadRequest, nil, "invalid limit")
			return
		}
		limit = n
	}

	list := h.log.Recent(limit)
	if list == nil {
		list = []events.Event{}
	}
	utils.JSONResponse(c, http.StatusOK, list, "events retrieved successfully")
}

// StreamEventsHandler handles GET /events/ws
func (h *EventsHandler) StreamEventsHandler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("StreamEventsHandler: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("StreamEventsHandler: subscriber attached", map[string]any{"remote": c.ClientIP()})
	h.hub.Attach(c.Request.Context(), conn)
}
