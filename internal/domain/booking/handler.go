package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"barbershop/internal/pkg/response"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// CreateBooking stores a booking for the client and staff member named in the body.
// POST /api/v1/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.manager.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// GetHistory pages through a client's or staff member's bookings.
// GET /api/v1/bookings/history?role=client&id=5&page=1&limit=10
func (h *Handler) GetHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id query parameter must be an integer")
		return
	}
	page, err := queryInt(c, "page", DefaultPage)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "page must be an integer")
		return
	}
	limit, err := queryInt(c, "limit", DefaultLimit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be an integer")
		return
	}

	q := HistoryQuery{
		Role:  c.Query("role"),
		ID:    id,
		Page:  page,
		Limit: limit,
	}
	bookings, err := h.manager.GetHistory(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"page":     q.Page,
		"limit":    q.Limit,
	})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
