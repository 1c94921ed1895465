package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"darwin", "amd64", "legacyready_Darwin_all.tar.gz"},
		{"darwin", "arm64", "legacyready_Darwin_all.tar.gz"},
		{"linux", "amd64", "legacyready_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "legacyready_Linux_arm64.tar.gz"},
		{"linux", "386", "legacyready_Linux_i386.tar.gz"},
		{"windows", "amd64", "legacyready_Windows_x86_64.zip"},
		{"freebsd", "amd64", ""},
		{"linux", "mips", ""},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.want == "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	got := parseChecksums([]byte("abc123  legacyready_Darwin_all.tar.gz\n\nnot a checksum line here\nfff  one  two\r\ndef456  legacyready_Linux_x86_64.tar.gz"))
	assert.Equal(t, map[string]string{
		"legacyready_Darwin_all.tar.gz":   "abc123",
		"legacyready_Linux_x86_64.tar.gz": "def456",
	}, got)
	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release archive")
	assert.NoError(t, verifyChecksum(data, sha256Hex(data)))
	assert.NoError(t, verifyChecksum(data, strings.ToUpper(sha256Hex(data))))
	assert.ErrorIs(t, verifyChecksum(data, strings.Repeat("0", 64)), ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	bin := []byte("#!/bin/sh\necho legacyready")

	got, err := extractBinary(tarGz(t, "dist/legacyready", bin), "legacyready_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	got, err = extractBinary(zipped(t, "legacyready.exe", bin), "legacyready_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = extractBinary(tarGz(t, "README.md", bin), "legacyready_Linux_x86_64.tar.gz")
	assert.ErrorContains(t, err, "not found")

	_, err = extractBinary([]byte("garbage"), "legacyready_Linux_x86_64.tar.gz")
	assert.ErrorContains(t, err, "open gzip")
}

func TestReplaceExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "legacyready")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	require.NoError(t, replaceExecutable(target, []byte("new build")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new build", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(dir, ".legacyready-update-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	assert.Error(t, replaceExecutable(filepath.Join(dir, "missing"), []byte("x")))
}

// fakeRelease serves a latest-release document and the named assets for v2.0.0.
func fakeRelease(t *testing.T, assets map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/endevo/legacyready/releases/latest" {
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			return
		}
		name, ok := strings.CutPrefix(r.URL.Path, "/endevo/legacyready/releases/download/v2.0.0/")
		body, found := assets[name]
		if !ok || !found {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	const asset = "legacyready_Darwin_all.tar.gz"
	bin := []byte("new-legacyready-binary")
	archive := tarGz(t, "legacyready", bin)

	newChecker := func(srv *httptest.Server, execPath string) *Checker {
		return NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
			withPlatform("darwin", "arm64"),
		)
	}

	t.Run("installs latest release", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "legacyready")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))
		srv := fakeRelease(t, map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(sha256Hex(archive) + "  " + asset + "\n"),
		})

		var stages []string
		err := newChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, bin, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("explicit target skips the check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "legacyready")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))
		srv := fakeRelease(t, map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(sha256Hex(archive) + "  " + asset + "\n"),
		})

		var stages []string
		err := newChecker(srv, execPath).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v2.0.0", TargetVersion: "v2.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.NotContains(t, stages, "check")
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := fakeRelease(t, nil)
		err := newChecker(srv, "").Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := fakeRelease(t, map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(strings.Repeat("0", 64) + "  " + asset + "\n"),
		})
		err := newChecker(srv, "").Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset missing from checksums", func(t *testing.T) {
		srv := fakeRelease(t, map[string][]byte{asset: archive, "checksums.txt": nil})
		err := newChecker(srv, "").Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := fakeRelease(t, nil)
		err := newChecker(srv, "").Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorContains(t, err, "download archive")
	})
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func tarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o755, Typeflag: tar.TypeReg}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipped(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
