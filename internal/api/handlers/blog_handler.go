package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type BlogHandler struct {
	svc services.BlogService
}

func NewBlogHandler(svc services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

type CreateBlogRequest struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Title           string   `json:"title" binding:"required"`
	Content         string   `json:"content" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	Category        []string `json:"category"`
	Tags            []string `json:"tags"`
	Image           string   `json:"image"`
	Slug            string   `json:"slug"`
	IsPublished     bool     `json:"isPublished"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "BlogHandler.Create", "invalid request body", err))
		return
	}

	blog, err := h.svc.Create(c.Request.Context(), &models.Blog{
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Title:           req.Title,
		Content:         req.Content,
		Author:          req.Author,
		Category:        req.Category,
		Tags:            req.Tags,
		Image:           req.Image,
		Slug:            req.Slug,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, blog, "Blog created successfully")
}

func (h *BlogHandler) List(c *gin.Context) {
	opts := mongorepo.BlogListOptions{
		Category: c.Query("category"),
	}
	if tags := c.Query("tags"); tags != "" {
		opts.Tags = strings.Split(tags, ",")
	}
	// Absence of isPublished means "no filter", not false.
	if v, present := c.GetQuery("isPublished"); present {
		published := v == "true"
		opts.IsPublished = &published
	}

	blogs, err := h.svc.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, blogs, "Blogs fetched successfully")
}

func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, blog, "Blog fetched successfully")
}

type UpdateBlogRequest struct {
	MetaTitle       *string   `json:"metaTitle,omitempty"`
	MetaDescription *string   `json:"metaDescription,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Content         *string   `json:"content,omitempty"`
	Author          *string   `json:"author,omitempty"`
	Category        *[]string `json:"category,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Slug            *string   `json:"slug,omitempty"`
	IsPublished     *bool     `json:"isPublished,omitempty"`
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "BlogHandler.Update", "invalid request body", err))
		return
	}

	blog, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.BlogUpdate{
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Title:           req.Title,
		Content:         req.Content,
		Author:          req.Author,
		Category:        req.Category,
		Tags:            req.Tags,
		Image:           req.Image,
		Slug:            req.Slug,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, blog, "Blog updated successfully")
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Blog deleted successfully")
}
