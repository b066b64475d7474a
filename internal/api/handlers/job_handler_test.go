package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubJobService struct {
	job *models.Job
	err error
}

func (s *stubJobService) Create(ctx context.Context, j *models.Job) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	j.ID = primitive.NewObjectID()
	return j, nil
}

func (s *stubJobService) List(ctx context.Context) ([]models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.job == nil {
		return []models.Job{}, nil
	}
	return []models.Job{*s.job}, nil
}

func (s *stubJobService) Get(ctx context.Context, idOrSlug string) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.job, nil
}

func (s *stubJobService) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	return s.Get(ctx, slug)
}

func (s *stubJobService) Update(ctx context.Context, idOrSlug string, upd services.JobUpdate) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.job, nil
}

func (s *stubJobService) Delete(ctx context.Context, id string) error { return s.err }

func jobRouter(svc services.JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(svc)
	r := gin.New()
	r.POST("/jobs", h.Create)
	r.GET("/jobs", h.List)
	r.GET("/jobs/:id", h.Get)
	r.DELETE("/jobs/:id", h.Delete)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestJobCreateResponds201(t *testing.T) {
	r := jobRouter(&stubJobService{})

	body := `{"title":"Go Developer","location":"Dhaka","description":"Backend role.",
		"employmentStatus":"full-time","vacancy":2,"salary":"negotiable","workplace":"on-site"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("code %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env["message"] != "Job created successfully" {
		t.Fatalf("message %v", env["message"])
	}
	if env["body"] == nil {
		t.Fatal("missing body")
	}
}

func TestJobCreateRejectsBadBody(t *testing.T) {
	r := jobRouter(&stubJobService{})

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"title":"only a title"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code %d", w.Code)
	}
}

func TestJobGetNotFound(t *testing.T) {
	r := jobRouter(&stubJobService{err: utils.E(utils.CodeNotFound, "JobService.Get", "job not found", nil)})

	req := httptest.NewRequest(http.MethodGet, "/jobs/whatever", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("code %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env["message"] != "job not found" {
		t.Fatalf("message %v", env["message"])
	}
}

func TestInternalErrorIsMasked(t *testing.T) {
	r := jobRouter(&stubJobService{err: utils.E(utils.CodeInternal, "JobService.List", "mongo connection refused at 10.0.0.5", nil)})

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", env["message"])
	}
}

func TestJobDeleteResponds200(t *testing.T) {
	r := jobRouter(&stubJobService{})

	req := httptest.NewRequest(http.MethodDelete, "/jobs/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env["message"] != "Job deleted successfully" {
		t.Fatalf("message %v", env["message"])
	}
}
