package controller

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/donations/model"
)

func newDonationApp(t *testing.T) (*fiber.App, *DonationController) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Donation{}))

	store := collections.NewStore[model.Donation](db, "donations", "donation_id")
	ctrl := NewDonationController(db, store)

	app := fiber.New()
	app.Post("/donations/notification", ctrl.HandleMidtransNotification)
	app.Put("/donations/:id/status", ctrl.UpdateStatus)
	return app, ctrl
}

func seedDonation(t *testing.T, ctrl *DonationController, orderID string) model.Donation {
	t.Helper()
	d := model.Donation{
		DonationName:           "Donor",
		DonationEmail:          "donor@example.org",
		DonationAmount:         50_000,
		DonationStatus:         model.DonationStatusPending,
		DonationOrderID:        orderID,
		DonationPaymentGateway: "midtrans",
	}
	_, err := ctrl.Store.Create(context.Background(), &d)
	require.NoError(t, err)
	return d
}

func postJSON(t *testing.T, app *fiber.App, target, payload string) int {
	t.Helper()
	req := httptest.NewRequest("POST", target, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestWebhookConfirmsDonation(t *testing.T) {
	app, ctrl := newDonationApp(t)
	d := seedDonation(t, ctrl, "DONATION-1001")

	code := postJSON(t, app, "/donations/notification",
		`{"order_id":"DONATION-1001","transaction_status":"settlement"}`)
	assert.Equal(t, fiber.StatusOK, code)

	got, err := ctrl.Store.Get(context.Background(), d.DonationID)
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusConfirmed, got.DonationStatus)
	require.NotNil(t, got.DonationPaidAt)
}

func TestWebhookRejectsOnExpire(t *testing.T) {
	app, ctrl := newDonationApp(t)
	d := seedDonation(t, ctrl, "DONATION-1002")

	code := postJSON(t, app, "/donations/notification",
		`{"order_id":"DONATION-1002","transaction_status":"expire"}`)
	assert.Equal(t, fiber.StatusOK, code)

	got, err := ctrl.Store.Get(context.Background(), d.DonationID)
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusRejected, got.DonationStatus)
	assert.Nil(t, got.DonationPaidAt)
}

func TestWebhookUnknownOrder(t *testing.T) {
	app, _ := newDonationApp(t)

	code := postJSON(t, app, "/donations/notification",
		`{"order_id":"DONATION-9999","transaction_status":"settlement"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestWebhookMissingFields(t *testing.T) {
	app, _ := newDonationApp(t)

	code := postJSON(t, app, "/donations/notification", `{"order_id":"DONATION-1"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestManualStatusUpdateSetsPaidAt(t *testing.T) {
	app, ctrl := newDonationApp(t)
	d := seedDonation(t, ctrl, "DONATION-1003")

	req := httptest.NewRequest("PUT", "/donations/"+d.DonationID.String()+"/status",
		bytes.NewBufferString(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := ctrl.Store.Get(context.Background(), d.DonationID)
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusConfirmed, got.DonationStatus)
	require.NotNil(t, got.DonationPaidAt)
}
