package dto

import (
	"gorm.io/datatypes"

	"almanar_backend/internals/features/students/model"
)

type CreateStudentRequest struct {
	Name       string         `json:"name" validate:"required,min=2,max=100"`
	Email      string         `json:"email" validate:"omitempty,email"`
	Phone      string         `json:"phone" validate:"omitempty,max=30"`
	University string         `json:"university" validate:"omitempty,max=200"`
	Major      string         `json:"major" validate:"omitempty,max=200"`
	Sector     string         `json:"sector" validate:"required,oneof=academic qirat charity dawa"`
	Status     string         `json:"status" validate:"omitempty,oneof=pending approved rejected active graduated on_hold inactive"`
	Extra      map[string]any `json:"extra" validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel() model.Student {
	status := r.Status
	if status == "" {
		status = model.StudentStatusPending
	}
	return model.Student{
		StudentName:       r.Name,
		StudentEmail:      r.Email,
		StudentPhone:      r.Phone,
		StudentUniversity: r.University,
		StudentMajor:      r.Major,
		StudentSector:     r.Sector,
		StudentStatus:     status,
		StudentExtra:      datatypes.JSONMap(r.Extra),
	}
}

type UpdateStudentRequest struct {
	Name       *string        `json:"name" validate:"omitempty,min=2,max=100"`
	Email      *string        `json:"email" validate:"omitempty,email"`
	Phone      *string        `json:"phone" validate:"omitempty,max=30"`
	University *string        `json:"university" validate:"omitempty,max=200"`
	Major      *string        `json:"major" validate:"omitempty,max=200"`
	Sector     *string        `json:"sector" validate:"omitempty,oneof=academic qirat charity dawa"`
	Status     *string        `json:"status" validate:"omitempty,oneof=pending approved rejected active graduated on_hold inactive"`
	Extra      map[string]any `json:"extra" validate:"omitempty"`
}

func (r UpdateStudentRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Name != nil {
		p["student_name"] = *r.Name
	}
	if r.Email != nil {
		p["student_email"] = *r.Email
	}
	if r.Phone != nil {
		p["student_phone"] = *r.Phone
	}
	if r.University != nil {
		p["student_university"] = *r.University
	}
	if r.Major != nil {
		p["student_major"] = *r.Major
	}
	if r.Sector != nil {
		p["student_sector"] = *r.Sector
	}
	if r.Status != nil {
		p["student_status"] = *r.Status
	}
	if r.Extra != nil {
		p["student_extra"] = datatypes.JSONMap(r.Extra)
	}
	return p
}

type UpdateStudentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected active graduated on_hold inactive"`
}
