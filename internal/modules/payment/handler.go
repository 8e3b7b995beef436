package payment

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
	rg.POST("/payments", h.Create)
	rg.GET("/payments", h.List)
	rg.GET("/payments/:id", h.GetByID)
	rg.PUT("/payments/:id", h.MarkPaid)
	rg.DELETE("/payments/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePayment(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment amount")
		case errors.Is(err, ErrMpesaUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "GATEWAY_UNAVAILABLE", "M-Pesa is not configured")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) List(c *gin.Context) {
	var (
		payments []domain.Payment
		err      error
	)
	if c.GetString("role") == string(domain.RoleAdmin) {
		payments, err = h.service.List(c.Request.Context())
	} else {
		payments, err = h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}
	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete payment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}
	p, err := h.service.MarkPaid(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}
