package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/profile", h.Profile)
	rg.PUT("/users/profile", h.UpdateProfile)
	rg.DELETE("/users/profile", h.DeleteAccount)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case isValidationErr(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case isValidationErr(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case isValidationErr(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.service.DeleteAccount(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete account")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func isValidationErr(err error) bool {
	return errors.Is(err, validate.ErrInvalidEmail) ||
		errors.Is(err, validate.ErrInvalidPhone) ||
		errors.Is(err, validate.ErrPasswordTooWeak)
}
