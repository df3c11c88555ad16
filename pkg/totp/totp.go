// Package totp implements RFC 6238 time-based one-time passwords for
// the second-factor flows: secret generation, code validation with a
// one-step skew window, and otpauth provisioning URIs.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

const (
	// Period is the code rotation interval in seconds.
	Period = 30
	// Digits is the code length.
	Digits = 6
	// skewSteps is how many adjacent periods are accepted either side
	// of now, to absorb clock drift between server and authenticator.
	skewSteps = 1
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret returns a fresh 160-bit secret, base32-encoded for
// manual entry into an authenticator app.
func GenerateSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return strings.ToUpper(b32.EncodeToString(buf)), nil
}

// ProvisioningURI builds the otpauth URI encoded into the QR code
// shown on the MFA setup step.
func ProvisioningURI(secret, account, issuer string) string {
	q := url.Values{}
	q.Set("secret", secret)
	q.Set("issuer", issuer)
	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer), url.PathEscape(account), q.Encode())
}

// GenerateCode computes the code for the given secret at time t.
func GenerateCode(secret string, t time.Time) (string, error) {
	key, err := b32.DecodeString(strings.ToUpper(strings.TrimSpace(secret)))
	if err != nil {
		return "", err
	}
	counter := uint64(t.Unix()) / Period

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// RFC 4226 dynamic truncation.
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", Digits, code%1000000), nil
}

// Validate reports whether code matches the secret within the skew
// window around now. Comparison is constant-time.
func Validate(secret, code string, now time.Time) bool {
	code = strings.TrimSpace(code)
	if len(code) != Digits {
		return false
	}
	for step := -skewSteps; step <= skewSteps; step++ {
		want, err := GenerateCode(secret, now.Add(time.Duration(step)*Period*time.Second))
		if err != nil {
			return false
		}
		if subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1 {
			return true
		}
	}
	return false
}
