package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// binaryName is the executable packed in every release archive.
const binaryName = "legacyready"

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects the release to install. An empty TargetVersion means
// the latest one.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported at each stage: check, download, verify,
// extract, apply and done.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release archive for this platform, verifies it
// against the release's checksums.txt and swaps it in for the running
// binary.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == devVersion {
		return ErrDevBuild
	}
	report := func(stage, msg string) {
		if progress != nil {
			progress(UpdateProgress{Stage: stage, Message: msg})
		}
	}

	tag := input.TargetVersion
	if tag == "" {
		report("check", "Checking for latest version...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := assetNameFor(c.goos, c.goarch)
	if err != nil {
		return err
	}

	report("download", "Downloading "+tag+"...")
	archive, err := c.fetchAsset(ctx, tag, asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report("verify", "Verifying checksum...")
	sums, err := c.fetchAsset(ctx, tag, "checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset]
	if !ok {
		return fmt.Errorf("%w: %s is not listed in checksums.txt", ErrChecksum, asset)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	report("extract", "Extracting binary...")
	bin, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report("apply", "Applying update...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceExecutable(target, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report("done", "Updated to "+tag)
	return nil
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// assetNameFor mirrors the archive names produced by the release build.
// macOS ships a single universal archive.
func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}
	var osName, ext string
	switch goos {
	case "linux":
		osName, ext = "Linux", ".tar.gz"
	case "windows":
		osName, ext = "Windows", ".zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	return binaryName + "_" + osName + "_" + arch + ext, nil
}

func (c *Checker) fetchAsset(ctx context.Context, tag, name string) ([]byte, error) {
	url := strings.TrimRight(c.downloadBaseURL, "/") + "/" +
		path.Join(c.owner, c.repo, "releases", "download", tag, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// parseChecksums reads sha256sum output: "<hex>  <file>" per line.
// Anything else is skipped.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if f := strings.Fields(sc.Text()); len(f) == 2 {
			sums[f[1]] = f[0]
		}
	}
	return sums
}

func verifyChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, wantHex) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// extractBinary pulls the executable out of a .tar.gz or, on Windows, a
// .zip archive.
func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return fromZip(archive, binaryName+".exe")
	}
	return fromTarGz(archive, binaryName)
}

func fromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func fromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// replaceExecutable writes bin next to target and renames it into place,
// keeping target's permissions. The temp file is re-read and hashed before
// the rename so a partial write never replaces a working binary.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sha256.Sum256(written) != sha256.Sum256(bin) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
