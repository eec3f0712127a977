package branch

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	branches := r.Group("/branches")
	{
		branches.GET("", h.RankBranches) // GET /api/v1/branches?latitude=..&longitude=..
		branches.GET("/:id", h.GetBranch)
	}
}

// RegisterOwnerRoutes expects r to be guarded for the owner role.
func (h *Handler) RegisterOwnerRoutes(r *gin.RouterGroup) {
	r.POST("/branches", h.CreateBranch)
	r.POST("/addresses", h.CreateAddress)
}
