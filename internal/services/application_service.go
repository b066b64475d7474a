package services

import (
	"context"
	"errors"
	"time"

	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplyInput struct {
	JobID       string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	CVURL       string
}

// ApplicationUpdate is the closed set of fields an admin may change.
// Server-assigned fields (id, timestamps) have no representation here, so
// they are stripped structurally rather than by filtering.
type ApplicationUpdate struct {
	FullName              *string
	Email                 *string
	Phone                 *string
	CoverLetter           *string
	CVURL                 *string
	Status                *models.ApplicationStatus
	InterviewDateWithTime *time.Time
	InterviewMode         *models.InterviewMode
	JoiningDate           *time.Time
}

// ApplicationService tracks an applicant through the hiring workflow:
//
//	applied → shortlisted | rejected | withdrawn
//	shortlisted → interviewed | rejected | withdrawn | on-hold
//	interviewed → selected | offered | rejected | on-hold | withdrawn
//	selected/offered → withdrawn
//
// Field preconditions are enforced for the interviewed and selected/offered
// statuses; other transitions are accepted as given.
type ApplicationService interface {
	Apply(ctx context.Context, in ApplyInput) (*models.ApplicationView, error)
	Update(ctx context.Context, id string, upd ApplicationUpdate) (*models.ApplicationView, error)
	List(ctx context.Context, jobID string) ([]models.ApplicationView, error)
	Get(ctx context.Context, id string) (*models.ApplicationView, error)
}

type applicationService struct {
	applications mongorepo.ApplicationRepository
	jobs         mongorepo.JobRepository
}

func NewApplicationService(applications mongorepo.ApplicationRepository, jobs mongorepo.JobRepository) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs}
}

func (s *applicationService) Apply(ctx context.Context, in ApplyInput) (*models.ApplicationView, error) {
	const op = "ApplicationService.Apply"

	if in.JobID == "" || in.FullName == "" || in.Email == "" || in.Phone == "" || in.CVURL == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"jobId, fullName, email, phone, and cvUrl are required", nil)
	}

	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up job", err)
	}

	app := &models.JobApplication{
		JobID:       jobID,
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		CoverLetter: in.CoverLetter,
		CVURL:       in.CVURL,
		Status:      models.StatusApplied,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}

	return &models.ApplicationView{
		JobApplication: *app,
		JobTitle:       job.Title,
		JobSlug:        job.Slug,
	}, nil
}

func (s *applicationService) Update(ctx context.Context, id string, upd ApplicationUpdate) (*models.ApplicationView, error) {
	const op = "ApplicationService.Update"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
	}
	app, err := s.applications.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	// All validation happens before any field is applied, so a rejected
	// update leaves the stored record untouched.
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, utils.E(utils.CodeInvalidArgument, op, "invalid application status", nil)
		}
		switch *upd.Status {
		case models.StatusInterviewed:
			if upd.InterviewDateWithTime == nil || upd.InterviewMode == nil {
				return nil, utils.E(utils.CodeInvalidArgument, op,
					"interviewDateWithTime and interviewMode are required for interviewed candidates", nil)
			}
		case models.StatusSelected, models.StatusOffered:
			if upd.JoiningDate == nil {
				return nil, utils.E(utils.CodeInvalidArgument, op,
					"joiningDate is required for selected/offered candidates", nil)
			}
		}
	}
	if upd.InterviewMode != nil && !upd.InterviewMode.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid interview mode", nil)
	}

	if upd.FullName != nil {
		app.FullName = *upd.FullName
	}
	if upd.Email != nil {
		app.Email = *upd.Email
	}
	if upd.Phone != nil {
		app.Phone = *upd.Phone
	}
	if upd.CoverLetter != nil {
		app.CoverLetter = *upd.CoverLetter
	}
	if upd.CVURL != nil {
		app.CVURL = *upd.CVURL
	}
	if upd.InterviewDateWithTime != nil {
		app.InterviewDateWithTime = upd.InterviewDateWithTime
	}
	if upd.InterviewMode != nil {
		app.InterviewMode = *upd.InterviewMode
	}
	if upd.JoiningDate != nil {
		app.JoiningDate = upd.JoiningDate
	}
	if upd.Status != nil {
		app.Status = *upd.Status
	}

	if err := s.applications.Replace(ctx, app); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update application", err)
	}

	return s.enrich(ctx, *app), nil
}

func (s *applicationService) List(ctx context.Context, jobID string) ([]models.ApplicationView, error) {
	const op = "ApplicationService.List"

	var filter *primitive.ObjectID
	if jobID != "" {
		oid, err := primitive.ObjectIDFromHex(jobID)
		if err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "invalid jobId filter", err)
		}
		filter = &oid
	}

	apps, err := s.applications.List(ctx, filter)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	// One job lookup per distinct job, not per application.
	jobCache := map[primitive.ObjectID]*models.Job{}
	views := make([]models.ApplicationView, 0, len(apps))
	for _, app := range apps {
		job, seen := jobCache[app.JobID]
		if !seen {
			job, err = s.jobs.GetByID(ctx, app.JobID)
			if err != nil && !errors.Is(err, utils.ErrNotFound) {
				return nil, utils.E(utils.CodeInternal, op, "failed to look up job", err)
			}
			jobCache[app.JobID] = job
		}
		view := models.ApplicationView{JobApplication: app}
		if job != nil {
			view.JobTitle = job.Title
			view.JobSlug = job.Slug
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.ApplicationView, error) {
	const op = "ApplicationService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
	}
	app, err := s.applications.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}
	return s.enrich(ctx, *app), nil
}

// enrich attaches the referenced job's title and slug; a dangling reference
// leaves them empty.
func (s *applicationService) enrich(ctx context.Context, app models.JobApplication) *models.ApplicationView {
	view := &models.ApplicationView{JobApplication: app}
	if job, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
		view.JobTitle = job.Title
		view.JobSlug = job.Slug
	}
	return view
}
