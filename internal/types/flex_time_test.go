package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/greenloop/ewastedb/internal/types"
)

func TestFlexTimeUnmarshal(t *testing.T) {
	var ft types.FlexTime

	// Full RFC 3339 timestamp
	if err := json.Unmarshal([]byte(`"2026-09-15T10:30:00Z"`), &ft); err != nil {
		t.Fatalf("Failed to unmarshal timestamp: %v", err)
	}
	want := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	if !ft.Time().Equal(want) {
		t.Errorf("Expected %v, got %v", want, ft.Time())
	}

	// Bare calendar date
	if err := json.Unmarshal([]byte(`"2026-09-15"`), &ft); err != nil {
		t.Fatalf("Failed to unmarshal date: %v", err)
	}
	want = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !ft.Time().Equal(want) {
		t.Errorf("Expected %v, got %v", want, ft.Time())
	}

	// null leaves the zero value
	var zero types.FlexTime
	if err := json.Unmarshal([]byte(`null`), &zero); err != nil {
		t.Fatalf("Failed to unmarshal null: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("Expected zero time for null, got %v", zero.Time())
	}

	// Garbage is rejected
	if err := json.Unmarshal([]byte(`"next tuesday"`), &ft); err == nil {
		t.Error("Expected error for unparseable date")
	}
}

func TestDomainErrorKinds(t *testing.T) {
	if !types.IsKind(types.ValidationError("bad input"), types.KindValidation) {
		t.Error("Expected validation kind")
	}
	if !types.IsKind(types.NotFoundError("missing"), types.KindNotFound) {
		t.Error("Expected not_found kind")
	}

	// Unclassified errors fall back to the fetch kind
	if !types.IsKind(json.Unmarshal([]byte("{"), &struct{}{}), types.KindFetch) {
		t.Error("Expected fetch kind for unclassified error")
	}
}
