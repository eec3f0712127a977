package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to be authenticated. Role guards are supplied by the caller so the
// handler stays unaware of how roles are resolved.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, createGuard, historyGuard gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", createGuard, h.CreateBooking)
		bookings.GET("/history", historyGuard, h.GetHistory)
	}
}
