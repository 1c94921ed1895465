package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/endevo/legacyready/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	server := releaseServer(t, http.StatusOK,
		`{"tag_name":"v1.4.0","html_url":"https://github.com/endevo/legacyready/releases/tag/v1.4.0"}`)

	tests := []struct {
		name      string
		version   string
		available bool
	}{
		{"older", "v1.3.2", true},
		{"older without prefix", "1.2.0", true},
		{"same", "v1.4.0", false},
		{"newer", "v2.0.0", false},
	}

	checker := NewChecker(WithBaseURL(server.URL))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.version})
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.UpdateAvailable)
			assert.Equal(t, "v1.4.0", result.LatestVersion)
			assert.Contains(t, result.ReleaseURL, "v1.4.0")
		})
	}
}

func TestCheck_DevBuildSkipsNetwork(t *testing.T) {
	checker := NewChecker(WithBaseURL("http://127.0.0.1:1"))
	for _, v := range []string{"(devel)", "", "not-a-version"} {
		result, err := checker.Check(context.Background(), &CheckInput{Version: v})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		server := releaseServer(t, http.StatusForbidden, `{"message":"rate limited"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("bad tag", func(t *testing.T) {
		server := releaseServer(t, http.StatusOK, `{"tag_name":"nightly"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		server := releaseServer(t, http.StatusOK, `{`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}

func TestWithRepo(t *testing.T) {
	c := NewChecker(WithRepo("acme", "tool"))
	assert.Equal(t, "acme", c.owner)
	assert.Equal(t, "tool", c.repo)
}
