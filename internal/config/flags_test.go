package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 3000}, ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:3000", want: NetAddress{Host: "0.0.0.0", Port: 3000}},
		{name: "all interfaces", input: ":3000", want: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-d", "sqlite://app.db",
		"-db-name", "careers",
		"-c", "/etc/careersphere.json",
		"-env-file", "/etc/careersphere.env",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-cookie-secure",
		"-allowed-origins", "https://a.example, https://b.example,",
		"-gemini-api-key", "gk",
		"-gemini-model", "gm",
		"-gemini-base-url", "http://gemini.local",
		"-adapter-timeout", "45s",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://app.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "careers", cfg.Storage.DB.Name)
	assert.Equal(t, "/etc/careersphere.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/careersphere.env", cfg.EnvFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gk", cfg.Adapter.GeminiAPIKey)
	assert.Equal(t, "gm", cfg.Adapter.GeminiModel)
	assert.Equal(t, "http://gemini.local", cfg.Adapter.GeminiBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-unknown"}},
		{"bad address", []string{"-a", "nowhere"}},
		{"bad duration", []string{"-token-duration", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
