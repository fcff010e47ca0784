package devconnect_test

import (
	"testing"

	"github.com/goliatone/devconnect"
	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	t.Run("builds url from email hash", func(t *testing.T) {
		url := devconnect.GravatarURL("test@example.com")

		assert.Equal(t, "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=200&r=pg&d=mm", url)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		assert.Equal(t,
			devconnect.GravatarURL("test@example.com"),
			devconnect.GravatarURL("  Test@Example.COM  "),
		)
	})
}
