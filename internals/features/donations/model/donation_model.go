package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusConfirmed = "confirmed"
	DonationStatusRejected  = "rejected"
)

var DonationStatuses = []string{
	DonationStatusPending,
	DonationStatusConfirmed,
	DonationStatusRejected,
}

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`

	DonationName  string `gorm:"column:donation_name;type:varchar(100);not null" json:"donation_name"`
	DonationEmail string `gorm:"column:donation_email;type:varchar(255)" json:"donation_email"`
	DonationPhone string `gorm:"column:donation_phone;type:varchar(30)" json:"donation_phone"`

	DonationAmount  int    `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`
	DonationMessage string `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationStatus string `gorm:"column:donation_status;type:varchar(20);default:'pending'" json:"donation_status"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	// midtrans for online payments; manual transfers carry a proof image URL
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;type:varchar(50);default:'midtrans'" json:"donation_payment_gateway"`
	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token"`
	DonationProofURL       string `gorm:"column:donation_proof_url;type:text" json:"donation_proof_url"`

	DonationPaidAt *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donation) TableName() string {
	return "donations"
}

func (m Donation) GetID() uuid.UUID {
	return m.DonationID
}

func (m *Donation) BeforeCreate(tx *gorm.DB) error {
	if m.DonationID == uuid.Nil {
		m.DonationID = uuid.New()
	}
	return nil
}
