package services_test

import (
	"testing"
	"time"

	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
)

// TestSchedulePickup covers the happy path: one pickup row, every device
// flipped to scheduled, one pickup_scheduled activity
func TestSchedulePickup(t *testing.T) {
	db := setupTestDB(t)

	d1, err := services.AddDevice(db, testUser, "Laptop A", models.DeviceLaptop, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	d2, err := services.AddDevice(db, testUser, "Laptop B", models.DeviceLaptop, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}

	date := time.Now().UTC().AddDate(0, 1, 0)
	pickup, err := services.SchedulePickup(db, testUser, "42 Oak Ave", date, []string{d1.ID, d2.ID})
	if err != nil {
		t.Fatalf("SchedulePickup failed: %v", err)
	}

	if pickup.Status != models.PickupStatusScheduled {
		t.Errorf("Expected pickup status scheduled, got %s", pickup.Status)
	}
	if got := pickup.Devices.Strings(); len(got) != 2 {
		t.Errorf("Expected 2 device ids on pickup, got %d", len(got))
	}
	if s := deviceStatus(t, db, d1.ID); s != models.DeviceStatusScheduled {
		t.Errorf("Expected device %s scheduled, got %s", d1.ID, s)
	}
	if s := deviceStatus(t, db, d2.ID); s != models.DeviceStatusScheduled {
		t.Errorf("Expected device %s scheduled, got %s", d2.ID, s)
	}
	if n := countActivities(t, db, testUser, models.ActivityPickupScheduled); n != 1 {
		t.Errorf("Expected 1 pickup_scheduled activity, got %d", n)
	}
}

func TestSchedulePickupValidation(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Old TV", models.DeviceTV, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	inWindow := time.Now().UTC().AddDate(0, 0, 7)

	cases := []struct {
		name    string
		address string
		date    time.Time
		devices []string
	}{
		{"empty address", "", inWindow, []string{device.ID}},
		{"zero date", "42 Oak Ave", time.Time{}, []string{device.ID}},
		{"past date", "42 Oak Ave", time.Now().UTC().AddDate(0, 0, -2), []string{device.ID}},
		{"beyond window", "42 Oak Ave", time.Now().UTC().AddDate(0, 4, 0), []string{device.ID}},
		{"no devices", "42 Oak Ave", inWindow, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.SchedulePickup(db, testUser, tc.address, tc.date, tc.devices)
			if !types.IsKind(err, types.KindValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}

	// No partial writes: device still pending, no pickups, no activity
	if s := deviceStatus(t, db, device.ID); s != models.DeviceStatusPending {
		t.Errorf("Expected device still pending, got %s", s)
	}
	pickups, err := services.ListPickups(db, testUser)
	if err != nil {
		t.Fatalf("ListPickups failed: %v", err)
	}
	if len(pickups) != 0 {
		t.Errorf("Expected no pickups after failed schedules, got %d", len(pickups))
	}
	if n := countActivities(t, db, testUser, models.ActivityPickupScheduled); n != 0 {
		t.Errorf("Expected no pickup_scheduled activity, got %d", n)
	}
}

// TestSchedulePickupNonPendingDevice verifies the whole set fails when any
// device is not in the pending pool, with no rows left behind
func TestSchedulePickupNonPendingDevice(t *testing.T) {
	db := setupTestDB(t)

	pending, err := services.AddDevice(db, testUser, "Mouse", models.DeviceMouse, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	donated, err := services.AddDevice(db, testUser, "Headphones", models.DeviceHeadphone, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 7)
	if _, err := services.DonateDevice(db, testUser, "School", date, donated.ID); err != nil {
		t.Fatalf("DonateDevice failed: %v", err)
	}

	_, err = services.SchedulePickup(db, testUser, "42 Oak Ave", date, []string{pending.ID, donated.ID})
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found error, got %v", err)
	}

	// The pending device must not have been flipped
	if s := deviceStatus(t, db, pending.ID); s != models.DeviceStatusPending {
		t.Errorf("Expected device still pending after rollback, got %s", s)
	}
	pickups, err := services.ListPickups(db, testUser)
	if err != nil {
		t.Fatalf("ListPickups failed: %v", err)
	}
	if len(pickups) != 0 {
		t.Errorf("Expected no pickups after rollback, got %d", len(pickups))
	}
}

func TestSchedulePickupDuplicateIDs(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Speaker", models.DeviceSpeaker, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 7)

	input := []string{device.ID, device.ID}
	pickup, err := services.SchedulePickup(db, testUser, "42 Oak Ave", date, input)
	if err != nil {
		t.Fatalf("SchedulePickup failed: %v", err)
	}
	if got := pickup.Devices.Strings(); len(got) != 1 {
		t.Errorf("Expected duplicate ids collapsed to 1, got %d", len(got))
	}

	// The caller's slice is not rewritten in place
	if len(input) != 2 || input[0] != device.ID || input[1] != device.ID {
		t.Errorf("Expected input slice untouched, got %v", input)
	}
}

func TestCompletePickup(t *testing.T) {
	db := setupTestDB(t)

	d1, err := services.AddDevice(db, testUser, "Camera", models.DeviceCamera, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	d2, err := services.AddDevice(db, testUser, "Console", models.DeviceGameConsole, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 10)
	pickup, err := services.SchedulePickup(db, testUser, "42 Oak Ave", date, []string{d1.ID, d2.ID})
	if err != nil {
		t.Fatalf("SchedulePickup failed: %v", err)
	}

	completed, err := services.CompletePickup(db, testUser, pickup.ID)
	if err != nil {
		t.Fatalf("CompletePickup failed: %v", err)
	}
	if completed.Status != models.PickupStatusCompleted {
		t.Errorf("Expected pickup completed, got %s", completed.Status)
	}
	if s := deviceStatus(t, db, d1.ID); s != models.DeviceStatusRecycled {
		t.Errorf("Expected device %s recycled, got %s", d1.ID, s)
	}
	if s := deviceStatus(t, db, d2.ID); s != models.DeviceStatusRecycled {
		t.Errorf("Expected device %s recycled, got %s", d2.ID, s)
	}
	if n := countActivities(t, db, testUser, models.ActivityDeviceRecycled); n != 1 {
		t.Errorf("Expected 1 device_recycled activity, got %d", n)
	}

	// Completing twice is a validation error
	_, err = services.CompletePickup(db, testUser, pickup.ID)
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error on double complete, got %v", err)
	}
}

func TestCancelPickup(t *testing.T) {
	db := setupTestDB(t)

	device, err := services.AddDevice(db, testUser, "Monitor", models.DeviceMonitor, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	date := time.Now().UTC().AddDate(0, 0, 10)
	pickup, err := services.SchedulePickup(db, testUser, "42 Oak Ave", date, []string{device.ID})
	if err != nil {
		t.Fatalf("SchedulePickup failed: %v", err)
	}

	cancelled, err := services.CancelPickup(db, testUser, pickup.ID)
	if err != nil {
		t.Fatalf("CancelPickup failed: %v", err)
	}
	if cancelled.Status != models.PickupStatusCancelled {
		t.Errorf("Expected pickup cancelled, got %s", cancelled.Status)
	}
	if s := deviceStatus(t, db, device.ID); s != models.DeviceStatusPending {
		t.Errorf("Expected device returned to pending, got %s", s)
	}

	// Cancellation writes no timeline entry
	if n := countActivities(t, db, testUser, models.ActivityDeviceRecycled); n != 0 {
		t.Errorf("Expected no device_recycled activity, got %d", n)
	}

	_, err = services.CancelPickup(db, testUser, pickup.ID)
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error on double cancel, got %v", err)
	}
}

func TestCompletePickupNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CompletePickup(db, testUser, "44444444-4444-4444-4444-444444444444")
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found error, got %v", err)
	}
}
