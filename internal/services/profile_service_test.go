package services_test

import (
	"testing"
	"time"

	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
)

func TestGetProfileEmpty(t *testing.T) {
	db := setupTestDB(t)

	profile, err := services.GetProfile(db, testUser)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.UserID != testUser {
		t.Errorf("Expected user id %s, got %s", testUser, profile.UserID)
	}
	if profile.Username != "" || profile.FullName != "" {
		t.Errorf("Expected empty profile, got %+v", profile)
	}
}

func TestUpsertProfile(t *testing.T) {
	db := setupTestDB(t)

	created, err := services.UpsertProfile(db, testUser, "ecofan", "Jordan Reyes")
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	if created.Username != "ecofan" || created.FullName != "Jordan Reyes" {
		t.Errorf("Unexpected created profile: %+v", created)
	}

	updated, err := services.UpsertProfile(db, testUser, "ecofan2", "Jordan Reyes")
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	if updated.Username != "ecofan2" {
		t.Errorf("Expected updated username ecofan2, got %s", updated.Username)
	}

	fetched, err := services.GetProfile(db, testUser)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if fetched.Username != "ecofan2" {
		t.Errorf("Expected persisted username ecofan2, got %s", fetched.Username)
	}
}

// TestUpsertProfileClearsFields verifies an empty string persists as a
// cleared value rather than leaving the old one behind
func TestUpsertProfileClearsFields(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.UpsertProfile(db, testUser, "ecofan", "Jordan Reyes"); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	cleared, err := services.UpsertProfile(db, testUser, "ecofan", "")
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	if cleared.FullName != "" {
		t.Errorf("Expected cleared full name in response, got %q", cleared.FullName)
	}

	fetched, err := services.GetProfile(db, testUser)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if fetched.FullName != "" {
		t.Errorf("Expected cleared full name in store, got %q", fetched.FullName)
	}
	if fetched.Username != "ecofan" {
		t.Errorf("Expected username ecofan preserved, got %q", fetched.Username)
	}
}

func TestJoinAndLeaveEvent(t *testing.T) {
	db := setupTestDB(t)

	date := time.Now().UTC().AddDate(0, 0, 21)
	signup, err := services.JoinEvent(db, testUser, 7, "Community Recycling Day", date)
	if err != nil {
		t.Fatalf("JoinEvent failed: %v", err)
	}
	if signup.EventID != 7 {
		t.Errorf("Expected event id 7, got %d", signup.EventID)
	}

	// Joining the same event twice is rejected
	_, err = services.JoinEvent(db, testUser, 7, "Community Recycling Day", date)
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error on duplicate join, got %v", err)
	}

	signups, err := services.ListEventSignups(db, testUser)
	if err != nil {
		t.Fatalf("ListEventSignups failed: %v", err)
	}
	if len(signups) != 1 {
		t.Fatalf("Expected 1 signup, got %d", len(signups))
	}

	if err := services.LeaveEvent(db, testUser, 7); err != nil {
		t.Fatalf("LeaveEvent failed: %v", err)
	}
	err = services.LeaveEvent(db, testUser, 7)
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found on second leave, got %v", err)
	}
}

func TestListEventSignupsOrder(t *testing.T) {
	db := setupTestDB(t)

	later := time.Now().UTC().AddDate(0, 1, 0)
	sooner := time.Now().UTC().AddDate(0, 0, 3)
	if _, err := services.JoinEvent(db, testUser, 1, "E-Waste Drive", later); err != nil {
		t.Fatalf("JoinEvent failed: %v", err)
	}
	if _, err := services.JoinEvent(db, testUser, 2, "Repair Cafe", sooner); err != nil {
		t.Fatalf("JoinEvent failed: %v", err)
	}

	signups, err := services.ListEventSignups(db, testUser)
	if err != nil {
		t.Fatalf("ListEventSignups failed: %v", err)
	}
	if len(signups) != 2 {
		t.Fatalf("Expected 2 signups, got %d", len(signups))
	}
	if signups[0].EventID != 2 {
		t.Errorf("Expected soonest event first, got event %d", signups[0].EventID)
	}
}
