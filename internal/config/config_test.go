package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvKey(t *testing.T) {
	testCases := []struct {
		key      string
		expected string
	}{
		{"CosmosDb:EndpointUri", "COSMOSDB__ENDPOINTURI"},
		{"Telegram:BotToken", "TELEGRAM__BOTTOKEN"},
		{"MatchCheck:IntervalMinutes", "MATCHCHECK__INTERVALMINUTES"},
		{"Server:Port", "SERVER__PORT"},
		{"plain", "PLAIN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, EnvKey(tc.key))
	}
}

func TestLoaderEnvOverrideWins(t *testing.T) {
	t.Setenv("COSMOSDB__ENDPOINTURI", "https://override.example")

	l := NewLoader()
	l.v.Set("CosmosDb:EndpointUri", "https://file.example")

	assert.Equal(t, "https://override.example", l.Get("CosmosDb:EndpointUri"))
}

func TestLoaderEmptyEnvFallsBackToFile(t *testing.T) {
	t.Setenv("COSMOSDB__ENDPOINTURI", "")

	l := NewLoader()
	l.v.Set("CosmosDb:EndpointUri", "https://file.example")

	assert.Equal(t, "https://file.example", l.Get("CosmosDb:EndpointUri"))
}

func TestParseInterval(t *testing.T) {
	assert.Equal(t, 10*time.Minute, ParseInterval("10"))
	assert.Equal(t, time.Minute, ParseInterval("1"))

	assert.Equal(t, 5*time.Minute, ParseInterval(""))
	assert.Equal(t, 5*time.Minute, ParseInterval("abc"))
	assert.Equal(t, 5*time.Minute, ParseInterval("0"))
	assert.Equal(t, 5*time.Minute, ParseInterval("-3"))
}

func TestParseEnabled(t *testing.T) {
	assert.False(t, ParseEnabled("false"))

	assert.True(t, ParseEnabled(""))
	assert.True(t, ParseEnabled("true"))
	assert.True(t, ParseEnabled("False"))
	assert.True(t, ParseEnabled("no"))
	assert.True(t, ParseEnabled("garbage"))
}
