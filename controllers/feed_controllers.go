package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/food-delivery/feed"
	"github.com/yeremiapane/food-delivery/utils"
)

type FeedController struct {
	Hub      *feed.Hub
	upgrader websocket.Upgrader
}

// NewFeedController accepts websocket upgrades from allowedOrigin only.
func NewFeedController(hub *feed.Hub, allowedOrigin string) *FeedController {
	return &FeedController{
		Hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Subscribe -> GET /ws/orders, streams order events until the client disconnects.
func (fc *FeedController) Subscribe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)

	ws, err := fc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("order feed upgrade failed")
		return
	}

	if err := fc.Hub.Register(ws, id); err != nil {
		utils.ErrorLogger.WithError(err).Error("order feed greeting failed")
		ws.Close()
		return
	}
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	fc.Hub.Unregister(ws)
}
