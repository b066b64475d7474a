package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/api/middleware"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
}

type authBody struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, authBody{User: user, Token: token}, "User registered successfully")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, authBody{User: user, Token: token}, "Login successful")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, utils.E(utils.CodeUnauthorized, "AuthHandler.Profile", "not authorized", nil))
		return
	}
	writeBody(c, http.StatusOK, user, "Profile fetched successfully")
}

type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Avatar *string `json:"avatar,omitempty"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, utils.E(utils.CodeUnauthorized, "AuthHandler.UpdateProfile", "not authorized", nil))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.UpdateProfile", "invalid request body", err))
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), user.ID, services.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, updated, "Profile updated successfully")
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, utils.E(utils.CodeUnauthorized, "AuthHandler.ChangePassword", "not authorized", nil))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.ChangePassword", "invalid request body", err))
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Password changed successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.CurrentClaims(c)
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, users, "Users fetched successfully")
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "User deleted successfully")
}
