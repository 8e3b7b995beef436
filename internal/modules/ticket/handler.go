package ticket

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/support-tickets", h.Create)
	rg.GET("/support-tickets", h.List)
	rg.GET("/support-tickets/:id", h.GetByID)
	rg.PUT("/support-tickets/:id", h.Update)
	rg.DELETE("/support-tickets/:id", h.Delete)
	rg.GET("/support-tickets/events", h.Events)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	t, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create ticket")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"ticket": t})
}

func (h *Handler) List(c *gin.Context) {
	var (
		tickets []domain.SupportTicket
		err     error
	)
	if c.GetString("role") == string(domain.RoleAdmin) {
		tickets, err = h.service.List(c.Request.Context())
	} else {
		tickets, err = h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tickets")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": tickets})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ticket ID")
		return
	}
	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load ticket")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": t})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ticket ID")
		return
	}
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	t, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ticket status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update ticket")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": t})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ticket ID")
		return
	}
	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete ticket")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Events upgrades the connection and parks it in the hub until the
// client goes away.
func (h *Handler) Events(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
