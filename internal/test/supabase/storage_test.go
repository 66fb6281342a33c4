package supabase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chairai-backend/internal/supabase"
)

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "service-key", "portfolio-images")
	require.NoError(t, err)

	url := client.GetPublicURL("users/abc/portfolio/chair.jpg")

	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/portfolio-images/users/abc/portfolio/chair.jpg", url)
}

func TestStoragePathFormat(t *testing.T) {
	userID := uuid.New()
	filename := "warsztat.jpg"

	expectedPath := "users/" + userID.String() + "/portfolio/" + filename

	assert.Contains(t, expectedPath, "users/")
	assert.Contains(t, expectedPath, "portfolio/")
	assert.Contains(t, expectedPath, filename)
}
