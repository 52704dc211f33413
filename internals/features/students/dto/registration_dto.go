package dto

type CreateRegistrationRequest struct {
	ProgramID string `json:"program_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Note      string `json:"note" validate:"omitempty"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
