package dto

type UpdateSiteSettingRequest struct {
	OrgName      *string `json:"org_name" validate:"omitempty,min=2,max=100"`
	ThemeColor   *string `json:"theme_color" validate:"omitempty,hexcolor"`
	Language     *string `json:"language" validate:"omitempty,oneof=ar en id"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=30"`
}
