package hotel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.List)
	rg.GET("/hotels/:id", h.GetByID)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.Create)
	rg.PUT("/hotels/:id", h.Update)
	rg.DELETE("/hotels/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	if c.Query("sort") == "rating" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		hotels, err := h.service.ListTopRated(c.Request.Context(), limit)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
		return
	}

	hotels, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	hotel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpsertHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return 0, false
	}
	return id, true
}
