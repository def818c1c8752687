package dto

import (
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
)

// ResourceRequest is the body of POST and PUT /api/resources
type ResourceRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255" example:"Projector"`
	ItemID   string `json:"item_id" binding:"required,notblank,max=100" example:"PRJ-01"`
	Features string `json:"features" example:"HDMI, 4000 lumens"`
}

// ResourceListQuery holds the inventory list filters
type ResourceListQuery struct {
	Name   string `form:"name"`
	ItemID string `form:"item_id"`
}

// ResourceResponse is the wire form of an inventory resource
type ResourceResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Projector"`
	ItemID    string  `json:"item_id" example:"PRJ-01"`
	Features  *string `json:"features" example:"HDMI, 4000 lumens"`
	CreatedAt string  `json:"created_at" example:"2024-03-09 08:35:07"`
}

// NewResourceResponse maps a resource model
func NewResourceResponse(r *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		ItemID:    r.ItemID,
		Features:  r.Features,
		CreatedAt: helpers.FormatTimestamp(r.CreatedAt),
	}
}

// NewResourceResponses maps a slice, never returning nil
func NewResourceResponses(list []*models.Resource) []*ResourceResponse {
	out := make([]*ResourceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewResourceResponse(r))
	}
	return out
}
