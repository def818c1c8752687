package services

import (
	"context"
	"strings"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// ResourceService defines the interface for inventory resource operations
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.ResourceRequest) (*models.Resource, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	ListResources(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error)
	UpdateResource(ctx context.Context, id int64, req *dto.ResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl struct {
	resourceRepo repositories.IResourceRepository
	logger       zerolog.Logger
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo repositories.IResourceRepository, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func resourceFromRequest(req *dto.ResourceRequest) *models.Resource {
	return &models.Resource{
		Name:     strings.TrimSpace(req.Name),
		ItemID:   strings.TrimSpace(req.ItemID),
		Features: helpers.NullableString(req.Features),
	}
}

func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.ResourceRequest) (*models.Resource, error) {
	resource := resourceFromRequest(req)
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("resourceId", resource.ID).Str("itemId", resource.ItemID).Msg("Resource created")
	return resource, nil
}

func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

func (s *resourceServiceImpl) ListResources(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error) {
	return s.resourceRepo.List(ctx, filter)
}

// UpdateResource replaces every editable field of resource id
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id int64, req *dto.ResourceRequest) (*models.Resource, error) {
	resource := resourceFromRequest(req)
	resource.ID = id
	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("resourceId", id).Msg("Resource updated")
	return resource, nil
}

func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id int64) error {
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("resourceId", id).Msg("Resource deleted")
	return nil
}
