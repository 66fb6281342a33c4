package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// AuthClient looks up user records through the Supabase Auth admin API.
type AuthClient struct {
	client *supabase.Client
}

func NewAuthClient(supabaseURL, serviceKey string) (*AuthClient, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &AuthClient{client: client}, nil
}

// GetUserDisplayName resolves a human-readable name for the user: the
// display_name or full_name metadata field, falling back to the email.
func (a *AuthClient) GetUserDisplayName(userID uuid.UUID) (string, error) {
	resp, err := a.client.Auth.AdminGetUser(types.AdminGetUserRequest{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	for _, key := range []string{"display_name", "full_name"} {
		if name, ok := resp.UserMetadata[key].(string); ok && name != "" {
			return name, nil
		}
	}
	if resp.Email != "" {
		return resp.Email, nil
	}
	return "", fmt.Errorf("user %s has no display name", userID)
}
