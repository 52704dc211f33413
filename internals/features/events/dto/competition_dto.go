package dto

import "almanar_backend/internals/features/events/model"

type CreateCompetitionRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Prize       string `json:"prize" validate:"omitempty,max=200"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Sector      string `json:"sector" validate:"required,oneof=academic qirat charity dawa"`
	Status      string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

func (r CreateCompetitionRequest) ToModel() model.Competition {
	status := r.Status
	if status == "" {
		status = model.CompetitionStatusUpcoming
	}
	return model.Competition{
		CompetitionTitle:       r.Title,
		CompetitionDescription: r.Description,
		CompetitionDate:        r.Date,
		CompetitionPrize:       r.Prize,
		CompetitionImageURL:    r.ImageURL,
		CompetitionSector:      r.Sector,
		CompetitionStatus:      status,
	}
}

type UpdateCompetitionRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Prize       *string `json:"prize" validate:"omitempty,max=200"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Sector      *string `json:"sector" validate:"omitempty,oneof=academic qirat charity dawa"`
	Status      *string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

func (r UpdateCompetitionRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Title != nil {
		p["competition_title"] = *r.Title
	}
	if r.Description != nil {
		p["competition_description"] = *r.Description
	}
	if r.Date != nil {
		p["competition_date"] = *r.Date
	}
	if r.Prize != nil {
		p["competition_prize"] = *r.Prize
	}
	if r.ImageURL != nil {
		p["competition_image_url"] = *r.ImageURL
	}
	if r.Sector != nil {
		p["competition_sector"] = *r.Sector
	}
	if r.Status != nil {
		p["competition_status"] = *r.Status
	}
	return p
}
