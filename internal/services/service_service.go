package services

import (
	"context"
	"errors"

	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceUpdate struct {
	Title       *string
	Description *string
	ImageURL    *string
}

// ServiceService manages the site's service offerings.
type ServiceService interface {
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, id string, upd ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

type serviceService struct {
	services mongorepo.ServiceRepository
}

func NewServiceService(services mongorepo.ServiceRepository) ServiceService {
	return &serviceService{services: services}
}

func (s *serviceService) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	const op = "ServiceService.Create"

	if svc.Title == "" || svc.Description == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title and description are required", nil)
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create service", err)
	}
	return svc, nil
}

func (s *serviceService) List(ctx context.Context) ([]models.Service, error) {
	const op = "ServiceService.List"

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list services", err)
	}
	return services, nil
}

func (s *serviceService) Get(ctx context.Context, id string) (*models.Service, error) {
	const op = "ServiceService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "service not found", err)
	}
	svc, err := s.services.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "service not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get service", err)
	}
	return svc, nil
}

func (s *serviceService) Update(ctx context.Context, id string, upd ServiceUpdate) (*models.Service, error) {
	const op = "ServiceService.Update"

	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		svc.Title = *upd.Title
	}
	if upd.Description != nil {
		svc.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		svc.ImageURL = *upd.ImageURL
	}

	if err := s.services.Replace(ctx, svc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update service", err)
	}
	return svc, nil
}

func (s *serviceService) Delete(ctx context.Context, id string) error {
	const op = "ServiceService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "service not found", err)
	}
	if err := s.services.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "service not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete service", err)
	}
	return nil
}
