package gatewaylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRedactsSecrets(t *testing.T) {
	out := sanitize(Fields{
		"reference":     "ref_001",
		"secret_key":    "sk_live_abc123",
		"Authorization": "Bearer sk_live_abc123",
		"sk_live_key":   "value",
	})

	assert.Equal(t, "ref_001", out["reference"])
	assert.Equal(t, "[REDACTED]", out["secret_key"])
	assert.Equal(t, "[REDACTED]", out["Authorization"])
	assert.Equal(t, "[REDACTED]", out["sk_live_key"])
}

func TestSanitizeNilFields(t *testing.T) {
	assert.Nil(t, sanitize(nil))
}

func TestCapture(t *testing.T) {
	c := NewCapture()
	c.Info("gateway.webhook.received", Fields{"ip": "127.0.0.1"})
	c.Warn("gateway.webhook.signature_invalid", Fields{"paystack_secret_key": "sk_test_x"})

	require.True(t, c.Seen("gateway.webhook.received"))
	require.False(t, c.Seen("gateway.webhook.acknowledged"))

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "[REDACTED]", entries[1].Fields["paystack_secret_key"])
}
