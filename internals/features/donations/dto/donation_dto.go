package dto

type CreateDonationRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Amount  int    `json:"amount" validate:"required,gt=0"`
	Message string `json:"message" validate:"omitempty"`

	// "midtrans" (default) or "manual" with a transfer-proof image
	Gateway  string `json:"gateway" validate:"omitempty,oneof=midtrans manual"`
	ProofURL string `json:"proof_url" validate:"omitempty,url"`
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected"`
}
