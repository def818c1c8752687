package memrepo

import (
	"context"
	"strings"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
)

// ResourceRepository is the in-memory IResourceRepository
type ResourceRepository struct{ s *Store }

func (r *ResourceRepository) Create(_ context.Context, res *models.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res.ID = r.s.id()
	res.CreatedAt = r.s.now()
	cp := *res
	r.s.resources = append(r.s.resources, &cp)
	return nil
}

func (r *ResourceRepository) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, res := range r.s.resources {
		if res.ID == id {
			cp := *res
			return &cp, nil
		}
	}
	return nil, apperrors.ErrInventoryItemNotFound
}

func (r *ResourceRepository) List(_ context.Context, f repositories.ResourceFilter) ([]*models.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*models.Resource{}
	for _, res := range r.s.resources {
		if v := strings.TrimSpace(f.Name); v != "" && !containsFold(res.Name, v) {
			continue
		}
		if v := strings.TrimSpace(f.ItemID); v != "" && res.ItemID != v {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	sortNewestFirst(out, func(res *models.Resource) (time.Time, int64) { return res.CreatedAt, res.ID })
	return out, nil
}

func (r *ResourceRepository) Update(_ context.Context, res *models.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.resources {
		if existing.ID == res.ID {
			existing.Name = res.Name
			existing.ItemID = res.ItemID
			existing.Features = res.Features
			res.CreatedAt = existing.CreatedAt
			return nil
		}
	}
	return apperrors.ErrInventoryItemNotFound
}

func (r *ResourceRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	before := len(r.s.resources)
	r.s.resources = filterSlice(r.s.resources, func(res *models.Resource) bool { return res.ID != id })
	if len(r.s.resources) == before {
		return apperrors.ErrInventoryItemNotFound
	}
	return nil
}
