package services

import (
	"context"
	"errors"

	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobUpdate struct {
	Title            *string
	Location         *string
	Description      *string
	EmploymentStatus *string
	Vacancy          *int
	Salary           *string
	Workplace        *string
	Des1             *string
	Des2             *string
	Des3             *string
	Slug             *string
	IsPublished      *bool
}

type JobService interface {
	Create(ctx context.Context, j *models.Job) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	// Get resolves by id first, then by slug; NotFound only if both miss.
	Get(ctx context.Context, idOrSlug string) (*models.Job, error)
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)
	Update(ctx context.Context, idOrSlug string, upd JobUpdate) (*models.Job, error)
	// Delete does not cascade: applications referencing the job are left in
	// place with a dangling jobId.
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	jobs mongorepo.JobRepository
}

func NewJobService(jobs mongorepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) Create(ctx context.Context, j *models.Job) (*models.Job, error) {
	const op = "JobService.Create"

	if j.Title == "" || j.Location == "" || j.Description == "" ||
		j.EmploymentStatus == "" || j.Salary == "" || j.Workplace == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"title, location, description, employmentStatus, salary, and workplace are required", nil)
	}
	if j.Vacancy <= 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "vacancy must be positive", nil)
	}
	if j.Slug == "" {
		j.Slug = utils.Slugify(j.Title)
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "a job with this slug already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return j, nil
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	const op = "JobService.List"

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return jobs, nil
}

func (s *jobService) resolve(ctx context.Context, idOrSlug string) (*models.Job, error) {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		j, err := s.jobs.GetByID(ctx, oid)
		if err == nil || !errors.Is(err, utils.ErrNotFound) {
			return j, err
		}
	}
	return s.jobs.GetBySlug(ctx, idOrSlug)
}

func (s *jobService) Get(ctx context.Context, idOrSlug string) (*models.Job, error) {
	const op = "JobService.Get"

	j, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return j, nil
}

func (s *jobService) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	const op = "JobService.GetBySlug"

	j, err := s.jobs.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return j, nil
}

func (s *jobService) Update(ctx context.Context, idOrSlug string, upd JobUpdate) (*models.Job, error) {
	const op = "JobService.Update"

	j, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Location != nil {
		j.Location = *upd.Location
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.EmploymentStatus != nil {
		j.EmploymentStatus = *upd.EmploymentStatus
	}
	if upd.Vacancy != nil {
		if *upd.Vacancy <= 0 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "vacancy must be positive", nil)
		}
		j.Vacancy = *upd.Vacancy
	}
	if upd.Salary != nil {
		j.Salary = *upd.Salary
	}
	if upd.Workplace != nil {
		j.Workplace = *upd.Workplace
	}
	if upd.Des1 != nil {
		j.Des1 = *upd.Des1
	}
	if upd.Des2 != nil {
		j.Des2 = *upd.Des2
	}
	if upd.Des3 != nil {
		j.Des3 = *upd.Des3
	}
	if upd.Slug != nil {
		j.Slug = *upd.Slug
	}
	if upd.IsPublished != nil {
		j.IsPublished = *upd.IsPublished
	}

	if err := s.jobs.Replace(ctx, j); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "a job with this slug already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return j, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	const op = "JobService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "job not found", err)
	}
	if err := s.jobs.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}
