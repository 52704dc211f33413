package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"almanar_backend/internals/features/donations/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken builds a Snap payment token for a pending donation.
func GenerateSnapToken(d model.Donation) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: int64(d.DonationAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonationName,
			Email: d.DonationEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// StatusForTransaction maps a Midtrans transaction_status to the donation
// status enum. Unknown statuses stay pending.
func StatusForTransaction(transactionStatus string) string {
	switch transactionStatus {
	case "settlement", "capture", "success":
		return model.DonationStatusConfirmed
	case "deny", "cancel", "expire", "failure":
		return model.DonationStatusRejected
	default:
		return model.DonationStatusPending
	}
}
