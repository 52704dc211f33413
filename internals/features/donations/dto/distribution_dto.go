package dto

import "almanar_backend/internals/features/donations/model"

type CreateDistributionRequest struct {
	Title         string `json:"title" validate:"required,min=2,max=200"`
	Description   string `json:"description" validate:"omitempty"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount        int    `json:"amount" validate:"required,gte=0"`
	Beneficiaries int    `json:"beneficiaries" validate:"omitempty,gte=0"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	Status        string `json:"status" validate:"omitempty,oneof=planned distributed"`
}

func (r CreateDistributionRequest) ToModel() model.Distribution {
	status := r.Status
	if status == "" {
		status = model.DistributionStatusPlanned
	}
	return model.Distribution{
		DistributionTitle:         r.Title,
		DistributionDescription:   r.Description,
		DistributionDate:          r.Date,
		DistributionAmount:        r.Amount,
		DistributionBeneficiaries: r.Beneficiaries,
		DistributionImageURL:      r.ImageURL,
		DistributionStatus:        status,
	}
}

type UpdateDistributionRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description   *string `json:"description" validate:"omitempty"`
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount        *int    `json:"amount" validate:"omitempty,gte=0"`
	Beneficiaries *int    `json:"beneficiaries" validate:"omitempty,gte=0"`
	ImageURL      *string `json:"image_url" validate:"omitempty,url"`
	Status        *string `json:"status" validate:"omitempty,oneof=planned distributed"`
}

func (r UpdateDistributionRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Title != nil {
		p["distribution_title"] = *r.Title
	}
	if r.Description != nil {
		p["distribution_description"] = *r.Description
	}
	if r.Date != nil {
		p["distribution_date"] = *r.Date
	}
	if r.Amount != nil {
		p["distribution_amount"] = *r.Amount
	}
	if r.Beneficiaries != nil {
		p["distribution_beneficiaries"] = *r.Beneficiaries
	}
	if r.ImageURL != nil {
		p["distribution_image_url"] = *r.ImageURL
	}
	if r.Status != nil {
		p["distribution_status"] = *r.Status
	}
	return p
}
