package dto

import "almanar_backend/internals/features/students/model"

type CreateProgramRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Sector      string `json:"sector" validate:"required,oneof=academic qirat charity dawa"`
	Status      string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r CreateProgramRequest) ToModel() model.Program {
	status := r.Status
	if status == "" {
		status = model.ProgramStatusActive
	}
	return model.Program{
		ProgramTitle:       r.Title,
		ProgramDescription: r.Description,
		ProgramImageURL:    r.ImageURL,
		ProgramSector:      r.Sector,
		ProgramStatus:      status,
	}
}

type UpdateProgramRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Students    *int    `json:"students" validate:"omitempty,gte=0"`
	Sector      *string `json:"sector" validate:"omitempty,oneof=academic qirat charity dawa"`
	Status      *string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r UpdateProgramRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Title != nil {
		p["program_title"] = *r.Title
	}
	if r.Description != nil {
		p["program_description"] = *r.Description
	}
	if r.ImageURL != nil {
		p["program_image_url"] = *r.ImageURL
	}
	if r.Students != nil {
		p["program_students"] = *r.Students
	}
	if r.Sector != nil {
		p["program_sector"] = *r.Sector
	}
	if r.Status != nil {
		p["program_status"] = *r.Status
	}
	return p
}
