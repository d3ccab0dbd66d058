package routes

import (
	"stickynotes/notes/services"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes exposes the live note event stream.
func RegisterWebSocketRoutes(router gin.IRouter, wsService services.WebSocketServiceInterface) {
	router.GET("/ws", wsService.HandleConnection)
}
