package devconnect

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Gravatar parameters: 200px, pg rated, mystery-man fallback.
const gravatarURLFormat = "https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm"

// GravatarURL derives the avatar URL for an email address. The derivation is
// deterministic: same email, same URL.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf(gravatarURLFormat, hex.EncodeToString(sum[:]))
}
