package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes expects protected to run the JWT middleware.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.GetNotifications)
		notifications.PATCH("/:id/read", h.MarkAsRead)
		notifications.POST("/read-all", h.MarkAllAsRead)
	}
}

func (h *WSHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/notifications", h.HandleWebSocket)
}
