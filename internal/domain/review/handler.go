package review

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

// CreateReview stores a review written by the calling client.
// POST /api/v1/reviews
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "rating must be 1..5 and branch_id is required")
		case errors.Is(err, ErrBranchNotFound):
			response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		case errors.Is(err, ErrStaffNotFound):
			response.Error(c, http.StatusBadRequest, "STAFF_NOT_FOUND", "staff_id does not reference a staff member")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

// GetBranchReviews
// GET /api/v1/branches/:id/reviews?limit=20&offset=0
func (h *Handler) GetBranchReviews(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || branchID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid branch ID")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	res, err := h.service.ListByBranch(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}

	response.Success(c, http.StatusOK, res)
}
