// 📁 controller/donation_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/donations/dto"
	"almanar_backend/internals/features/donations/model"
	donationService "almanar_backend/internals/features/donations/service"
	helpers "almanar_backend/internals/helpers"
)

type DonationController struct {
	DB    *gorm.DB
	Store *collections.Store[model.Donation]
}

func NewDonationController(db *gorm.DB, store *collections.Store[model.Donation]) *DonationController {
	return &DonationController{DB: db, Store: store}
}

// 🟢 CREATE DONATION: public, no login required. Midtrans donations get a
// Snap token; manual transfers carry a proof-image URL and wait for an admin.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	gateway := body.Gateway
	if gateway == "" {
		gateway = "midtrans"
	}

	donation := model.Donation{
		DonationName:           body.Name,
		DonationEmail:          body.Email,
		DonationPhone:          body.Phone,
		DonationAmount:         body.Amount,
		DonationMessage:        body.Message,
		DonationStatus:         model.DonationStatusPending,
		DonationOrderID:        fmt.Sprintf("DONATION-%d", time.Now().UnixNano()),
		DonationPaymentGateway: gateway,
		DonationProofURL:       body.ProofURL,
	}

	id, err := ctrl.Store.Create(c.UserContext(), &donation)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to save donation")
	}

	resp := fiber.Map{
		"donation_id": id,
		"order_id":    donation.DonationOrderID,
	}

	if gateway == "midtrans" {
		token, err := donationService.GenerateSnapToken(donation)
		if err != nil {
			log.Println("[ERROR] snap token:", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create payment token")
		}
		if err := ctrl.Store.Update(c.UserContext(), id, map[string]any{
			"donation_payment_token": token,
		}); err != nil {
			log.Println("[ERROR] save snap token:", err)
		}
		resp["snap_token"] = token
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated,
		"Donation created. Please continue with the payment.", resp)
}

// 🟢 GET ALL (admin): ordered snapshot with status filter
func (ctrl *DonationController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]model.Donation, 0, len(items))
		for _, d := range items {
			if d.DonationStatus == status {
				filtered = append(filtered, d)
			}
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.AdminOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

// 🟢 UPDATE STATUS (admin): manual confirm/reject
func (ctrl *DonationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid donation id")
	}
	var body dto.UpdateDonationStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	patch := map[string]any{"donation_status": body.Status}
	if body.Status == model.DonationStatusConfirmed {
		patch["donation_paid_at"] = time.Now().UTC()
	}
	if err := ctrl.Store.Update(c.UserContext(), id, patch); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
	}
	return helpers.Success(c, "Donation status updated", nil)
}

// 🟢 DELETE (admin)
func (ctrl *DonationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid donation id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete donation")
	}
	return helpers.Success(c, "Donation deleted", nil)
}

// 🟢 MIDTRANS WEBHOOK: flip status from the gateway notification
func (ctrl *DonationController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	var donation model.Donation
	if err := ctrl.DB.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Donation not found")
	}

	status := donationService.StatusForTransaction(transactionStatus)
	patch := map[string]any{"donation_status": status}
	if status == model.DonationStatusConfirmed {
		patch["donation_paid_at"] = time.Now().UTC()
	}
	// write through the store so every open dashboard sees the new status
	if err := ctrl.Store.Update(c.UserContext(), donation.DonationID, patch); err != nil {
		log.Println("[ERROR] webhook status update:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
	}
	return helpers.Success(c, "Notification processed", nil)
}

// 🟢 EXPORT CSV (admin)
func (ctrl *DonationController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	header := []string{"id", "name", "amount", "status", "order_id", "gateway", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			d.DonationID.String(),
			d.DonationName,
			fmt.Sprintf("%d", d.DonationAmount),
			d.DonationStatus,
			d.DonationOrderID,
			d.DonationPaymentGateway,
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "donations.csv", header, rows)
}
