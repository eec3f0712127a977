package branch

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

// RankBranches lists branches nearest first.
// GET /api/v1/branches?latitude=43.24&longitude=76.89
func (h *Handler) RankBranches(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "latitude and longitude query parameters are required numbers")
		return
	}

	ranked, err := h.service.Rank(c.Request.Context(), Coordinate{Latitude: lat, Longitude: lon})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"branches": ranked})
}

func (h *Handler) GetBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid branch ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Branch not found")
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"branch": b})
}

func (h *Handler) CreateBranch(c *gin.Context) {
	var req CreateBranchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"branch": b})
}

func (h *Handler) CreateAddress(c *gin.Context) {
	var req CreateAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CreateAddress(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"address": a})
}
