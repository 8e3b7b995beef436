package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.GetByID)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Cancel)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// List returns every booking for admins and the caller's own bookings
// for everyone else.
func (h *Handler) List(c *gin.Context) {
	var (
		bookings []domain.Booking
		err      error
	)
	if c.GetString("role") == string(domain.RoleAdmin) {
		bookings, err = h.service.List(c.Request.Context())
	} else {
		bookings, err = h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	b, err := h.service.UpdateBooking(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	if err := h.service.CancelBooking(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
