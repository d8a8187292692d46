package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// FlexTime is a time.Time that can be unmarshaled from either a full RFC 3339
// timestamp or a bare calendar date. The SPA's date pickers send both.
type FlexTime time.Time

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexTime: expected string, got %s", data)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*f = FlexTime(t)
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("FlexTime: invalid date %q", s)
	}
	*f = FlexTime(t)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).Format(time.RFC3339))
}

// Time converts FlexTime back to time.Time.
func (f FlexTime) Time() time.Time {
	return time.Time(f)
}

// IsZero reports whether the underlying time is the zero instant.
func (f FlexTime) IsZero() bool {
	return time.Time(f).IsZero()
}
