package favorite

import "github.com/gin-gonic/gin"

// RegisterRoutes expects rg to be guarded for the client role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:branchId", h.AddFavorite)
		favorites.DELETE("/:branchId", h.RemoveFavorite)
		favorites.GET("/:branchId/check", h.CheckFavorite)
	}
}
