package dto

import "almanar_backend/internals/features/resources/model"

type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty"`
	Type        string `json:"type" validate:"required,oneof=article book audio video link"`
	URL         string `json:"url" validate:"omitempty,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Sector      string `json:"sector" validate:"required,oneof=academic qirat charity dawa"`
	Status      string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r CreateResourceRequest) ToModel() model.Resource {
	status := r.Status
	if status == "" {
		status = model.ResourceStatusDraft
	}
	return model.Resource{
		ResourceTitle:       r.Title,
		ResourceDescription: r.Description,
		ResourceType:        r.Type,
		ResourceURL:         r.URL,
		ResourceImageURL:    r.ImageURL,
		ResourceSector:      r.Sector,
		ResourceStatus:      status,
	}
}

type UpdateResourceRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Type        *string `json:"type" validate:"omitempty,oneof=article book audio video link"`
	URL         *string `json:"url" validate:"omitempty,url"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Sector      *string `json:"sector" validate:"omitempty,oneof=academic qirat charity dawa"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r UpdateResourceRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Title != nil {
		p["resource_title"] = *r.Title
	}
	if r.Description != nil {
		p["resource_description"] = *r.Description
	}
	if r.Type != nil {
		p["resource_type"] = *r.Type
	}
	if r.URL != nil {
		p["resource_url"] = *r.URL
	}
	if r.ImageURL != nil {
		p["resource_image_url"] = *r.ImageURL
	}
	if r.Sector != nil {
		p["resource_sector"] = *r.Sector
	}
	if r.Status != nil {
		p["resource_status"] = *r.Status
	}
	return p
}
