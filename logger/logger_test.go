package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeRedactsCredentialsAndHashesPhones(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := Wrap(zap.New(core))

	log.Info("user registered", "api_key", "sk-secret", "phone", "0501234567", "user_id", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()

	assert.Equal(t, "[REDACTED]", fields["api_key"])
	phone, ok := fields["phone"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(phone, "hash:"))
	assert.NotContains(t, phone, "0501234567")
	assert.EqualValues(t, 3, fields["user_id"])
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"status", 200, "orphan"})
	assert.Equal(t, []interface{}{"status", 200, "orphan"}, out)
}

func TestHashIsStable(t *testing.T) {
	assert.Equal(t, hashValue("050-1234567"), hashValue("050-1234567"))
	assert.Equal(t, "", hashValue(""))
}
