package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type ServiceHandler struct {
	svc services.ServiceService
}

func NewServiceHandler(svc services.ServiceService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ServiceHandler.Create", "invalid request body", err))
		return
	}

	service, err := h.svc.Create(c.Request.Context(), &models.Service{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, service, "Service created successfully")
}

func (h *ServiceHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, items, "Services fetched successfully")
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, service, "Service fetched successfully")
}

type UpdateServiceRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ServiceHandler.Update", "invalid request body", err))
		return
	}

	service, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, service, "Service updated successfully")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Service deleted successfully")
}
