package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/branches/:id/reviews", h.GetBranchReviews)
}

// RegisterClientRoutes expects rg to be guarded for the client role.
func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.CreateReview)
}
