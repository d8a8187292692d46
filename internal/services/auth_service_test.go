package services

import (
	"testing"

	"github.com/authorizerdev/authorizer-go"
	"github.com/greenloop/ewastedb/internal/types"
)

// TestSessionUserID covers the response shapes Authorizer can return,
// including a valid session with no user object attached
func TestSessionUserID(t *testing.T) {
	cases := []struct {
		name string
		res  *authorizer.ValidateSessionResponse
		want string
	}{
		{"nil response", nil, ""},
		{"invalid session", &authorizer.ValidateSessionResponse{IsValid: false}, ""},
		{"valid without user", &authorizer.ValidateSessionResponse{IsValid: true}, ""},
		{"valid with empty id", &authorizer.ValidateSessionResponse{IsValid: true, User: &authorizer.User{}}, ""},
		{"valid", &authorizer.ValidateSessionResponse{IsValid: true, User: &authorizer.User{ID: "user-1"}}, "user-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userID, err := sessionUserID(tc.res)
			if tc.want == "" {
				if !types.IsKind(err, types.KindAuthRequired) {
					t.Errorf("Expected auth_required error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("sessionUserID failed: %v", err)
			}
			if userID != tc.want {
				t.Errorf("Expected user id %s, got %s", tc.want, userID)
			}
		})
	}
}
