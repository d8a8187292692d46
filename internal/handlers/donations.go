package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// DonationHandler handles donation routes
type DonationHandler struct {
	DB *gorm.DB
}

// DonateDeviceRequest is the POST /api/donations body.
type DonateDeviceRequest struct {
	Recipient    string         `json:"recipient" validate:"required"`
	DonationDate types.FlexTime `json:"donationDate"`
	DeviceID     string         `json:"deviceId" validate:"required"`
}

// ListDonations handles GET /api/donations
// @Summary List donations
// @Description List all donations made by the current user, newest first
// @Tags Donations
// @Produce json
// @Success 200 {array} models.Donation
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /donations [get]
func (h *DonationHandler) ListDonations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	donations, err := services.ListDonations(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if donations == nil {
		donations = []models.Donation{}
	}
	return c.Status(fiber.StatusOK).JSON(donations)
}

// DonateDevice handles POST /api/donations
// @Summary Donate a device
// @Description Donate one pending device to a recipient organization within the next month
// @Tags Donations
// @Accept json
// @Produce json
// @Param body body DonateDeviceRequest true "Donation to record"
// @Success 201 {object} models.Donation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /donations [post]
func (h *DonationHandler) DonateDevice(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	var body DonateDeviceRequest
	if err := parseBody(c, &body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	donation, err := services.DonateDevice(h.DB, userID, body.Recipient, body.DonationDate.Time(), body.DeviceID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, donation)
}
