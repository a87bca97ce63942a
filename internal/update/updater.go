package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Updater replaces the running ordinatorctl binary with the latest
// published release.
type Updater struct {
	checker    *Checker
	httpClient *http.Client
}

// NewUpdater returns an Updater for currentVersion.
func NewUpdater(currentVersion string) *Updater {
	return &Updater{
		checker:    NewChecker(currentVersion),
		httpClient: &http.Client{},
	}
}

// SelfUpdate downloads and installs the latest release in place of the
// currently running executable.
func (u *Updater) SelfUpdate(ctx context.Context) error {
	info, err := u.checker.CheckForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !info.Available {
		return fmt.Errorf("no update available")
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	tempFile, err := u.downloadBinary(ctx, info.DownloadURL)
	if err != nil {
		return fmt.Errorf("failed to download update: %w", err)
	}
	defer os.Remove(tempFile)

	if err := u.verifyChecksum(ctx, tempFile, info.DownloadURL+".sha256"); err != nil {
		if strings.HasPrefix(err.Error(), "checksum mismatch") {
			return fmt.Errorf("failed to verify update: %w", err)
		}
		fmt.Fprintf(os.Stderr, "warning: checksum verification skipped: %v\n", err)
	}

	if err := u.replaceBinary(execPath, tempFile); err != nil {
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	return nil
}

func (u *Updater) downloadBinary(ctx context.Context, url string) (string, error) {
	if strings.Contains(url, "github.com") && strings.Contains(url, "/releases/") && !strings.Contains(url, "/download/") {
		return "", fmt.Errorf("direct download not available for this platform")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	tempFile, err := os.CreateTemp("", "ordinatorctl-update-*")
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, resp.Body); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	if err := os.Chmod(tempFile.Name(), 0o755); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}

func (u *Updater) verifyChecksum(ctx context.Context, filePath, checksumURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checksumURL, nil)
	if err != nil {
		return err
	}
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("checksum file not found")
	}

	checksumData, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	parts := strings.Fields(string(checksumData))
	if len(parts) < 1 {
		return fmt.Errorf("invalid checksum format")
	}
	expected := parts[0]

	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return err
	}
	actual := hex.EncodeToString(hasher.Sum(nil))
	if actual != expected {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}

func (u *Updater) replaceBinary(currentPath, newPath string) error {
	backupPath := currentPath + ".backup"
	if err := copyFile(currentPath, backupPath); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := atomicReplace(currentPath, newPath); err != nil {
		if restoreErr := copyFile(backupPath, currentPath); restoreErr != nil {
			return fmt.Errorf("failed to replace binary and restore backup: replace error: %w, restore error: %v", err, restoreErr)
		}
		return fmt.Errorf("failed to replace binary (backup restored): %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to remove backup file %s: %v\n", backupPath, err)
	}
	return nil
}

func atomicReplace(oldPath, newPath string) error {
	if runtime.GOOS != "windows" {
		return os.Rename(newPath, oldPath)
	}
	if err := os.Remove(oldPath); err != nil {
		return err
	}
	return os.Rename(newPath, oldPath)
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode())
}
