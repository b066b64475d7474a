package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CoverLetter string `json:"coverLetter"`
	CVURL       string `json:"cvUrl" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "invalid request body", err))
		return
	}

	view, err := h.svc.Apply(c.Request.Context(), services.ApplyInput{
		JobID:       req.JobID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		CVURL:       req.CVURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusCreated, view, "Application submitted successfully")
}

type UpdateApplicationRequest struct {
	FullName              *string                   `json:"fullName,omitempty"`
	Email                 *string                   `json:"email,omitempty" binding:"omitempty,email"`
	Phone                 *string                   `json:"phone,omitempty"`
	CoverLetter           *string                   `json:"coverLetter,omitempty"`
	CVURL                 *string                   `json:"cvUrl,omitempty"`
	Status                *models.ApplicationStatus `json:"status,omitempty"`
	InterviewDateWithTime *time.Time                `json:"interviewDateWithTime,omitempty"`
	InterviewMode         *models.InterviewMode     `json:"interviewMode,omitempty"`
	JoiningDate           *time.Time                `json:"joiningDate,omitempty"`
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Update", "invalid request body", err))
		return
	}

	view, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.ApplicationUpdate{
		FullName:              req.FullName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		CoverLetter:           req.CoverLetter,
		CVURL:                 req.CVURL,
		Status:                req.Status,
		InterviewDateWithTime: req.InterviewDateWithTime,
		InterviewMode:         req.InterviewMode,
		JoiningDate:           req.JoiningDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, view, "Application updated successfully")
}

func (h *ApplicationHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, views, "Applications fetched successfully")
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, view, "Application fetched successfully")
}
