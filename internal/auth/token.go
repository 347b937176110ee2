package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DefaultSessionDuration is how long an issued session credential lives.
const DefaultSessionDuration = 7 * 24 * time.Hour

// ErrNoSecret signals a missing signing secret. This is a deployment
// precondition, not a per-request failure.
var ErrNoSecret = errors.New("session signing secret is not configured")

// Claims is the payload carried by a session token.
type Claims struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
}

func sign(secret string, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// IssueToken serializes the claims with an expiry ttl from now, signs the
// encoded body with HMAC-SHA256 and returns "body.signature".
func IssueToken(secret, subjectID, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	claims := Claims{
		SubjectID: subjectID,
		Email:     email,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + sign(secret, body), nil
}

// VerifyToken returns the claims of a valid, unexpired token and nil for
// everything else. Expired, malformed and forged tokens are deliberately
// indistinguishable to the caller.
func VerifyToken(secret, token string) *Claims {
	if secret == "" {
		return nil
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil
	}
	body, givenSig := parts[0], parts[1]

	expectedSig := sign(secret, body)
	if !hmac.Equal([]byte(expectedSig), []byte(givenSig)) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}

	if claims.ExpiresAt == 0 || time.Now().Unix() >= claims.ExpiresAt {
		return nil
	}

	return &claims
}
