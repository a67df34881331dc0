package user

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the backend puts into its access tokens.
type Claims struct {
	UserID  *int64 `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// base64url with or without padding
var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Resolve reads the identity out of a bearer credential.
//
// The signature is NOT verified: the result is only good for choosing what
// to show. The backend checks the same token on every request, so a forged
// claim gets nothing but a different screen followed by 401/403 answers.
// Only the payload segment is read; the header may be anything.
func Resolve(token string) (Identity, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return Identity{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrInvalidCredential, len(segments))
	}

	payload, err := parser.DecodeSegment(segments[1])
	if err != nil {
		return Identity{}, fmt.Errorf("%w: decode payload: %v", ErrInvalidCredential, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Identity{}, fmt.Errorf("%w: unmarshal payload: %v", ErrInvalidCredential, err)
	}

	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing sub", ErrInvalidCredential)
	}
	if claims.UserID == nil {
		return Identity{}, fmt.Errorf("%w: missing user_id", ErrInvalidCredential)
	}

	identity := Identity{
		Subject: claims.Subject,
		UserID:  *claims.UserID,
		IsAdmin: claims.IsAdmin,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}
