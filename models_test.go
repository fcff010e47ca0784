package devconnect_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/devconnect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONNeverLeaksPasswordHash(t *testing.T) {
	user := &devconnect.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "super-secret-hash",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "super-secret-hash")
	assert.Contains(t, string(raw), "test@example.com")
}

func TestPostOwnedBy(t *testing.T) {
	owner := uuid.New()
	post := &devconnect.Post{ID: uuid.New(), UserID: owner}

	assert.True(t, post.OwnedBy(owner.String()))
	assert.False(t, post.OwnedBy(uuid.New().String()))

	var nilPost *devconnect.Post
	assert.False(t, nilPost.OwnedBy(owner.String()))
}

func TestSocialLinksIsZero(t *testing.T) {
	assert.True(t, devconnect.SocialLinks{}.IsZero())
	assert.False(t, devconnect.SocialLinks{Twitter: "https://twitter.com/x"}.IsZero())
}
