package services_test

import (
	"testing"
	"time"

	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
)

const testUser = "11111111-1111-1111-1111-111111111111"

// TestAddDevice verifies a new device lands in the pending pool with one
// device_added timeline entry
func TestAddDevice(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Old iPhone", models.DeviceSmartphone, "Cracked screen")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}

	if device.ID == "" {
		t.Error("Expected a generated device id")
	}
	if device.Status != models.DeviceStatusPending {
		t.Errorf("Expected status pending, got %s", device.Status)
	}
	if n := countActivities(t, db, testUser, models.ActivityDeviceAdded); n != 1 {
		t.Errorf("Expected 1 device_added activity, got %d", n)
	}
}

func TestAddDeviceValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.AddDevice(db, testUser, "", models.DeviceLaptop, "")
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for empty name, got %v", err)
	}

	_, err = services.AddDevice(db, testUser, "Mystery Box", models.DeviceType("Toaster"), "")
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for unknown type, got %v", err)
	}

	// Nothing should have been written
	devices, err := services.ListDevices(db, testUser)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("Expected no devices after failed adds, got %d", len(devices))
	}
}

func TestListAvailableDevices(t *testing.T) {
	db := setupTestDB(t)

	pending, err := services.AddDevice(db, testUser, "Spare Monitor", models.DeviceMonitor, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	donated, err := services.AddDevice(db, testUser, "Spare Keyboard", models.DeviceKeyboard, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 7)
	if _, err := services.DonateDevice(db, testUser, "City Library", date, donated.ID); err != nil {
		t.Fatalf("DonateDevice failed: %v", err)
	}

	available, err := services.ListAvailableDevices(db, testUser)
	if err != nil {
		t.Fatalf("ListAvailableDevices failed: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("Expected 1 available device, got %d", len(available))
	}
	if available[0].ID != pending.ID {
		t.Errorf("Expected available device %s, got %s", pending.ID, available[0].ID)
	}
}

func TestDeleteDevice(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Dead Printer", models.DevicePrinter, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}

	if err := services.DeleteDevice(db, testUser, device.ID); err != nil {
		t.Fatalf("DeleteDevice failed: %v", err)
	}

	devices, err := services.ListDevices(db, testUser)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("Expected no devices after delete, got %d", len(devices))
	}
	if n := countActivities(t, db, testUser, models.ActivityDeviceRemoved); n != 1 {
		t.Errorf("Expected 1 device_removed activity, got %d", n)
	}
}

// TestDeleteScheduledDevice verifies a device held by an active pickup cannot
// be deleted until the pickup resolves
func TestDeleteScheduledDevice(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Old Tower", models.DeviceDesktop, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 14)
	pickup, err := services.SchedulePickup(db, testUser, "12 Elm St", date, []string{device.ID})
	if err != nil {
		t.Fatalf("SchedulePickup failed: %v", err)
	}

	err = services.DeleteDevice(db, testUser, device.ID)
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error deleting scheduled device, got %v", err)
	}

	// After cancelling the pickup the device is deletable again
	if _, err := services.CancelPickup(db, testUser, pickup.ID); err != nil {
		t.Fatalf("CancelPickup failed: %v", err)
	}
	if err := services.DeleteDevice(db, testUser, device.ID); err != nil {
		t.Errorf("Expected delete to succeed after cancel, got %v", err)
	}
}

func TestDeleteDeviceNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := services.DeleteDevice(db, testUser, "22222222-2222-2222-2222-222222222222")
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

// TestDeviceOwnershipIsolation verifies one user cannot see or delete
// another user's devices
func TestDeviceOwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	otherUser := "33333333-3333-3333-3333-333333333333"

	device, err := services.AddDevice(db, testUser, "My Tablet", models.DeviceTablet, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}

	devices, err := services.ListDevices(db, otherUser)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("Expected no devices for other user, got %d", len(devices))
	}

	err = services.DeleteDevice(db, otherUser, device.ID)
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found deleting another user's device, got %v", err)
	}
}
