package auth

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// EncodePayload packs an identity into the token's data claim:
// base64("email:username").
func EncodePayload(email, username string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + username))
}

// DecodePayload reverses EncodePayload. The text is split on the first
// colon, so a username may contain colons but an email may not.
func DecodePayload(data string) (domain.Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: payload is not base64: %v", ErrInvalidToken, err)
	}
	email, username, ok := strings.Cut(string(raw), ":")
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: payload has no separator", ErrInvalidToken)
	}
	return domain.Identity{Email: email, Username: username}, nil
}
