package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type CreateJobRequest struct {
	Title            string     `json:"title" binding:"required"`
	Location         string     `json:"location" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	EmploymentStatus string     `json:"employmentStatus" binding:"required"`
	Vacancy          int        `json:"vacancy" binding:"required"`
	Salary           string     `json:"salary" binding:"required"`
	Workplace        string     `json:"workplace" binding:"required"`
	Des1             string     `json:"des1"`
	Des2             string     `json:"des2"`
	Des3             string     `json:"des3"`
	Slug             string     `json:"slug"`
	IsPublished      bool       `json:"isPublished"`
	Expired          *time.Time `json:"expired,omitempty"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	job := &models.Job{
		Title:            req.Title,
		Location:         req.Location,
		Description:      req.Description,
		EmploymentStatus: req.EmploymentStatus,
		Vacancy:          req.Vacancy,
		Salary:           req.Salary,
		Workplace:        req.Workplace,
		Des1:             req.Des1,
		Des2:             req.Des2,
		Des3:             req.Des3,
		Slug:             req.Slug,
		IsPublished:      req.IsPublished,
	}
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	created, err := h.svc.Create(c.Request.Context(), job)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, created, "Job created successfully")
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, jobs, "Jobs fetched successfully")
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, job, "Job fetched successfully")
}

func (h *JobHandler) GetBySlug(c *gin.Context) {
	job, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, job, "Job fetched successfully")
}

type UpdateJobRequest struct {
	Title            *string `json:"title,omitempty"`
	Location         *string `json:"location,omitempty"`
	Description      *string `json:"description,omitempty"`
	EmploymentStatus *string `json:"employmentStatus,omitempty"`
	Vacancy          *int    `json:"vacancy,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	Workplace        *string `json:"workplace,omitempty"`
	Des1             *string `json:"des1,omitempty"`
	Des2             *string `json:"des2,omitempty"`
	Des3             *string `json:"des3,omitempty"`
	Slug             *string `json:"slug,omitempty"`
	IsPublished      *bool   `json:"isPublished,omitempty"`
}

func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}

	job, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.JobUpdate{
		Title:            req.Title,
		Location:         req.Location,
		Description:      req.Description,
		EmploymentStatus: req.EmploymentStatus,
		Vacancy:          req.Vacancy,
		Salary:           req.Salary,
		Workplace:        req.Workplace,
		Des1:             req.Des1,
		Des2:             req.Des2,
		Des3:             req.Des3,
		Slug:             req.Slug,
		IsPublished:      req.IsPublished,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, job, "Job updated successfully")
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Job deleted successfully")
}
