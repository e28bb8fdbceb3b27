package events

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureFormat(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	header := Signature(ts, []byte(`{"id":"evt_1"}`), "whsec_test")

	require.True(t, strings.HasPrefix(header, "t=1700000000,v1="))
	_, v1, ok := strings.Cut(header, "v1=")
	require.True(t, ok)
	assert.Len(t, v1, 64, "v1 is a hex-encoded SHA-256 digest")
}

func TestVerifySignatureRoundtrip(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"charge.succeeded"}`)
	header := Signature(time.Unix(1700000000, 0), payload, "whsec_test")

	assert.True(t, VerifySignature(header, payload, "whsec_test"))
	assert.False(t, VerifySignature(header, []byte(`{"id":"evt_2"}`), "whsec_test"), "tampered payload must fail")
	assert.False(t, VerifySignature(header, payload, "whsec_other"), "wrong secret must fail")
}

func TestVerifySignatureMalformedHeader(t *testing.T) {
	payload := []byte("{}")
	assert.False(t, VerifySignature("", payload, "whsec_test"))
	assert.False(t, VerifySignature("v1=deadbeef", payload, "whsec_test"))
	assert.False(t, VerifySignature("t=1700000000", payload, "whsec_test"))
	assert.False(t, VerifySignature("t=notanumber,v1=deadbeef", payload, "whsec_test"))
}
