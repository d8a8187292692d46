package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// DeviceHandler handles device registry routes
type DeviceHandler struct {
	DB *gorm.DB
}

// AddDeviceRequest is the POST /api/devices body.
type AddDeviceRequest struct {
	DeviceName  string `json:"deviceName" validate:"required"`
	DeviceType  string `json:"deviceType" validate:"required"`
	Description string `json:"description"`
}

// ListDevices handles GET /api/devices
// @Summary List devices
// @Description List all devices registered by the current user, newest first
// @Tags Devices
// @Produce json
// @Success 200 {array} models.Device
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	devices, err := services.ListDevices(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if devices == nil {
		devices = []models.Device{}
	}
	return c.Status(fiber.StatusOK).JSON(devices)
}

// ListAvailableDevices handles GET /api/devices/available
// @Summary List devices available for disposition
// @Description List the current user's devices with status pending
// @Tags Devices
// @Produce json
// @Success 200 {array} models.Device
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /devices/available [get]
func (h *DeviceHandler) ListAvailableDevices(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	devices, err := services.ListAvailableDevices(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if devices == nil {
		devices = []models.Device{}
	}
	return c.Status(fiber.StatusOK).JSON(devices)
}

// AddDevice handles POST /api/devices
// @Summary Register a device
// @Description Register a device for recycling or donation; it enters the pending pool
// @Tags Devices
// @Accept json
// @Produce json
// @Param body body AddDeviceRequest true "Device to register"
// @Success 201 {object} models.Device
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /devices [post]
func (h *DeviceHandler) AddDevice(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	var body AddDeviceRequest
	if err := parseBody(c, &body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	device, err := services.AddDevice(h.DB, userID, body.DeviceName, models.DeviceType(body.DeviceType), body.Description)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, device)
}

// DeleteDevice handles DELETE /api/devices/:id
// @Summary Delete a device
// @Description Remove a device; devices referenced by an active pickup are rejected
// @Tags Devices
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /devices/{id} [delete]
func (h *DeviceHandler) DeleteDevice(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	if err := services.DeleteDevice(h.DB, userID, c.Params("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, 1)
}
