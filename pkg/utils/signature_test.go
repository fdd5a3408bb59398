package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSignature(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref_001"}}`)

	sig := ComputeSignature(body, "s3cr3t")
	require.Len(t, sig, 128) // hex-encoded SHA-512 digest

	// Deterministic for identical inputs, different for a different key.
	assert.Equal(t, sig, ComputeSignature(body, "s3cr3t"))
	assert.NotEqual(t, sig, ComputeSignature(body, "other"))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref_001"}}`)
	sig := ComputeSignature(body, "s3cr3t")

	assert.True(t, VerifySignature(body, sig, "s3cr3t"))
	assert.False(t, VerifySignature(body, sig, "wrong-secret"))
	assert.False(t, VerifySignature(body, "deadbeef", "s3cr3t"))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref_001"}}`)
	sig := ComputeSignature(body, "s3cr3t")

	// Flipping any single byte must break verification.
	for i := range body {
		tampered := make([]byte, len(body))
		copy(tampered, body)
		tampered[i] ^= 0x01
		if VerifySignature(tampered, sig, "s3cr3t") {
			t.Fatalf("tampered byte at %d still verified", i)
		}
	}
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	body := []byte(`{}`)
	sig := ComputeSignature(body, "s3cr3t")

	assert.False(t, VerifySignature(nil, sig, "s3cr3t"))
	assert.False(t, VerifySignature(body, "", "s3cr3t"))
	assert.False(t, VerifySignature(body, sig, ""))
}
