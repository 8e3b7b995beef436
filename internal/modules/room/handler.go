package room

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
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/:id", h.GetByID)
	rg.GET("/hotels/:id/rooms", h.ListByHotel)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.Create)
	rg.PUT("/rooms/:id", h.Update)
	rg.DELETE("/rooms/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) ListByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}
	rooms, err := h.service.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room price")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room price")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
