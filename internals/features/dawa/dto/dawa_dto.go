package dto

import "almanar_backend/internals/features/dawa/model"

type CreateNewMuslimRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	ShahadaDate string `json:"shahada_date" validate:"omitempty,datetime=2006-01-02"`
	Mentor      string `json:"mentor" validate:"omitempty,max=100"`
	Note        string `json:"note" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=new learning integrated"`
}

func (r CreateNewMuslimRequest) ToModel() model.NewMuslim {
	status := r.Status
	if status == "" {
		status = model.NewMuslimStatusNew
	}
	return model.NewMuslim{
		NewMuslimName:        r.Name,
		NewMuslimPhone:       r.Phone,
		NewMuslimShahadaDate: r.ShahadaDate,
		NewMuslimMentor:      r.Mentor,
		NewMuslimNote:        r.Note,
		NewMuslimStatus:      status,
	}
}

type UpdateNewMuslimRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	ShahadaDate *string `json:"shahada_date" validate:"omitempty,datetime=2006-01-02"`
	Mentor      *string `json:"mentor" validate:"omitempty,max=100"`
	Note        *string `json:"note" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=new learning integrated"`
}

func (r UpdateNewMuslimRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Name != nil {
		p["new_muslim_name"] = *r.Name
	}
	if r.Phone != nil {
		p["new_muslim_phone"] = *r.Phone
	}
	if r.ShahadaDate != nil {
		p["new_muslim_shahada_date"] = *r.ShahadaDate
	}
	if r.Mentor != nil {
		p["new_muslim_mentor"] = *r.Mentor
	}
	if r.Note != nil {
		p["new_muslim_note"] = *r.Note
	}
	if r.Status != nil {
		p["new_muslim_status"] = *r.Status
	}
	return p
}

type CreateStarMemberRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Achievement string `json:"achievement" validate:"required"`
	Month       string `json:"month" validate:"required,datetime=2006-01"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Status      string `json:"status" validate:"omitempty,oneof=nominated featured"`
}

func (r CreateStarMemberRequest) ToModel() model.StarShiningMember {
	status := r.Status
	if status == "" {
		status = model.StarMemberStatusNominated
	}
	return model.StarShiningMember{
		StarMemberName:        r.Name,
		StarMemberAchievement: r.Achievement,
		StarMemberMonth:       r.Month,
		StarMemberImageURL:    r.ImageURL,
		StarMemberStatus:      status,
	}
}

type UpdateStarMemberRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Achievement *string `json:"achievement" validate:"omitempty"`
	Month       *string `json:"month" validate:"omitempty,datetime=2006-01"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Status      *string `json:"status" validate:"omitempty,oneof=nominated featured"`
}

func (r UpdateStarMemberRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Name != nil {
		p["star_member_name"] = *r.Name
	}
	if r.Achievement != nil {
		p["star_member_achievement"] = *r.Achievement
	}
	if r.Month != nil {
		p["star_member_month"] = *r.Month
	}
	if r.ImageURL != nil {
		p["star_member_image_url"] = *r.ImageURL
	}
	if r.Status != nil {
		p["star_member_status"] = *r.Status
	}
	return p
}
