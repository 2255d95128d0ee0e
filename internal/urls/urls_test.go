package urls_test

import (
	"errors"
	"testing"

	"github.com/sebamiro/luxrpc/internal/urls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want urls.Endpoint
	}{
		{
			raw:  "https://node.example:443",
			want: urls.Endpoint{Scheme: "https", Host: "node.example", Port: 443},
		},
		{
			raw:  "127.0.0.1:9650",
			want: urls.Endpoint{Host: "127.0.0.1", Port: 9650},
		},
		{
			raw:  "localhost",
			want: urls.Endpoint{Host: "localhost"},
		},
		{
			raw:  "http://host/ext/something",
			want: urls.Endpoint{Scheme: "http", Host: "host", Path: "/ext/something"},
		},
		{
			raw:  "http://10.0.0.1:9650/ext/bc/C/rpc",
			want: urls.Endpoint{Scheme: "http", Host: "10.0.0.1", Port: 9650, Path: "/ext/bc/C/rpc", ChainAlias: "C"},
		},
		{
			raw:  "http://[::1]:9650",
			want: urls.Endpoint{Scheme: "http", Host: "::1", Port: 9650},
		},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := urls.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNoHost(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://", "https://:9650", "://host"} {
		_, err := urls.Parse(raw)
		assert.Error(t, err, raw)
	}

	_, err := urls.Parse("")
	assert.True(t, errors.Is(err, urls.ErrNoHost))
	_, err = urls.Parse("http://:9650")
	assert.True(t, errors.Is(err, urls.ErrNoHost))
}

func TestParseBadPort(t *testing.T) {
	_, err := urls.Parse("http://host:99999")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		raw, suffix, want string
	}{
		{"127.0.0.1:9650", urls.InfoPath, "http://127.0.0.1:9650/ext/info"},
		{"https://node.example:443", urls.PlatformPath, "https://node.example:443/ext/P"},
		{"http://host/ext/something", urls.InfoPath, "http://host/ext/info"},
		{"http://host:9650/ext/bc/C/rpc", urls.HealthPath, "http://host:9650/ext/health"},
		{"host", urls.LivenessPath, "http://host/ext/health/liveness"},
		{"http://[::1]:9650", urls.InfoPath, "http://[::1]:9650/ext/info"},
		{"http://[::1]", urls.InfoPath, "http://[::1]/ext/info"},
	}
	for _, tt := range tests {
		got, err := urls.Resolve(tt.raw, tt.suffix)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	a, err := urls.Resolve("https://node.example:9650/some/path", urls.PlatformPath)
	require.NoError(t, err)
	b, err := urls.Resolve("https://node.example:9650/some/path", urls.PlatformPath)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
