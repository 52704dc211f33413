package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"almanar_backend/internals/features/donations/model"
)

func TestStatusForTransaction(t *testing.T) {
	cases := map[string]string{
		"settlement":    model.DonationStatusConfirmed,
		"capture":       model.DonationStatusConfirmed,
		"success":       model.DonationStatusConfirmed,
		"deny":          model.DonationStatusRejected,
		"cancel":        model.DonationStatusRejected,
		"expire":        model.DonationStatusRejected,
		"failure":       model.DonationStatusRejected,
		"pending":       model.DonationStatusPending,
		"authorize":     model.DonationStatusPending,
		"":              model.DonationStatusPending,
		"weird_unknown": model.DonationStatusPending,
	}
	for in, want := range cases {
		assert.Equal(t, want, StatusForTransaction(in), "transaction_status=%q", in)
	}
}
