package services

import (
	"context"
	"testing"

	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validJob(title string) *models.Job {
	return &models.Job{
		Title:            title,
		Location:         "Dhaka",
		Description:      "Build and run backend services.",
		EmploymentStatus: "full-time",
		Vacancy:          2,
		Salary:           "negotiable",
		Workplace:        "on-site",
	}
}

func TestJobCreateGeneratesSlug(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	job, err := svc.Create(context.Background(), validJob("Senior Go Developer"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Slug != "senior-go-developer" {
		t.Fatalf("slug %q", job.Slug)
	}
	if job.ID.IsZero() {
		t.Fatal("no id assigned")
	}
}

func TestJobCreateValidation(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	j := validJob("Incomplete")
	j.Location = ""
	if _, err := svc.Create(context.Background(), j); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("missing location: got %v", err)
	}

	j = validJob("No Vacancy")
	j.Vacancy = 0
	if _, err := svc.Create(context.Background(), j); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("zero vacancy: got %v", err)
	}
}

func TestJobCreateDuplicateSlug(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	if _, err := svc.Create(context.Background(), validJob("Backend Engineer")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), validJob("Backend Engineer"))
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("duplicate slug: got %v", err)
	}
}

func TestJobGetByIDOrSlug(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())
	job, err := svc.Create(context.Background(), validJob("DevOps Engineer"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := svc.Get(context.Background(), job.ID.Hex())
	if err != nil || byID.ID != job.ID {
		t.Fatalf("get by id: %v", err)
	}
	bySlug, err := svc.Get(context.Background(), "devops-engineer")
	if err != nil || bySlug.ID != job.ID {
		t.Fatalf("get by slug: %v", err)
	}
	if _, err := svc.Get(context.Background(), "no-such-job"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("miss: got %v", err)
	}
	if _, err := svc.Get(context.Background(), primitive.NewObjectID().Hex()); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
}

func TestJobUpdatePartial(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())
	job, err := svc.Create(context.Background(), validJob("ML Engineer"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	vacancy := 5
	published := true
	updated, err := svc.Update(context.Background(), job.ID.Hex(), JobUpdate{
		Vacancy:     &vacancy,
		IsPublished: &published,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Vacancy != 5 || !updated.IsPublished {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Title != "ML Engineer" || updated.Slug != "ml-engineer" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	bad := 0
	if _, err := svc.Update(context.Background(), job.ID.Hex(), JobUpdate{Vacancy: &bad}); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("zero vacancy update: got %v", err)
	}
}

func TestJobDelete(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())
	job, err := svc.Create(context.Background(), validJob("Short Contract"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), "not-hex"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("bad id: got %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), job.ID.Hex()); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("get after delete: got %v", err)
	}
}
