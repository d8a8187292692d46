package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/greenloop/ewastedb/internal/config"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern)
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
			cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

		var err error
		authClient, err = authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
	})

	return initErr
}

// ValidateSession validates a session cookie and returns the user id. A
// cached result is used when the session cache is configured, so repeat
// requests within the TTL skip the round trip to Authorizer.
func ValidateSession(ctx context.Context, cache *SessionCache, cookie string) (string, error) {
	if cookie == "" {
		return "", types.AuthRequiredError("no session cookie")
	}

	if cache != nil {
		if userID, ok := cache.Get(ctx, cookie); ok {
			return userID, nil
		}
	}

	if authClient == nil {
		return "", fmt.Errorf("authorizer client not initialized")
	}

	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return "", types.AuthRequiredError(fmt.Sprintf("session validation failed: %v", err))
	}

	userID, err := sessionUserID(res)
	if err != nil {
		return "", err
	}

	if cache != nil {
		cache.Set(ctx, cookie, userID)
	}
	return userID, nil
}

// sessionUserID extracts the user id from a validation response. User is a
// pointer in the SDK and can be absent even when is_valid is set.
func sessionUserID(res *authorizer.ValidateSessionResponse) (string, error) {
	if res == nil || !res.IsValid || res.User == nil {
		return "", types.AuthRequiredError("session is not valid")
	}
	if res.User.ID == "" {
		return "", types.AuthRequiredError("session carries no user id")
	}
	return res.User.ID, nil
}
