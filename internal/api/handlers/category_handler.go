package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type CategoryHandler struct {
	svc services.CategoryService
}

func NewCategoryHandler(svc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CategoryHandler.Create", "invalid request body", err))
		return
	}

	category, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, category, "Category created successfully")
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, categories, "Categories fetched successfully")
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, category, "Category fetched successfully")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CategoryHandler.Update", "invalid request body", err))
		return
	}

	category, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, category, "Category updated successfully")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Category deleted successfully")
}
