package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"barbershop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetFavorites lists the caller's favorite branches.
// GET /api/v1/favorites?page=1&per_page=20
func (h *Handler) GetFavorites(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	res, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), page, perPage)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get favorites")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	branchID, ok := branchIDParam(c)
	if !ok {
		return
	}

	f, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), branchID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": f})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	branchID, ok := branchIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), branchID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "removed"})
}

func (h *Handler) CheckFavorite(c *gin.Context) {
	branchID, ok := branchIDParam(c)
	if !ok {
		return
	}

	exists, err := h.service.Exists(c.Request.Context(), c.GetInt64("user_id"), branchID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_favorite": exists})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrBranchNotFound):
		response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Branch is not in favorites")
	case errors.Is(err, ErrAlreadyExists):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Branch already in favorites")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func branchIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("branchId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid branch ID")
		return 0, false
	}
	return id, true
}
