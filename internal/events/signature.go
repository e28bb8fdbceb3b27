package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the request header carrying the event signature.
const SignatureHeader = "Stripe-Signature"

// Signature computes the delivery signature for a payload: an HMAC-SHA256
// of "<timestamp>.<payload>" keyed by the endpoint secret, rendered as
// "t=<timestamp>,v1=<hex>". Self-consistent, not attack-resistant.
func Signature(ts time.Time, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

// VerifySignature checks a header produced by Signature against the
// payload and secret. Intended for receivers in tests.
func VerifySignature(header string, payload []byte, secret string) bool {
	var ts int64
	var v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return false
			}
			ts = parsed
		case "v1":
			v1 = v
		}
	}
	if ts == 0 || v1 == "" {
		return false
	}
	expected := Signature(time.Unix(ts, 0), payload, secret)
	return hmac.Equal([]byte(expected), []byte(fmt.Sprintf("t=%d,v1=%s", ts, v1)))
}
