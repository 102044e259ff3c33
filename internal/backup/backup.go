// Package backup stores exported snapshots on disk and verifies them by hash.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/basket-md/basket/internal/config"
)

const (
	filePrefix = "basket-backup-"
	fileSuffix = ".json"
)

// File describes a snapshot found in the backups directory.
type File struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

func ensureBackupsDir() error {
	return os.MkdirAll(config.GetBackupsDir(), 0o750)
}

// FileName is the default snapshot name for an export taken at t.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format("2006-01-02-150405") + fileSuffix
}

// Save writes content to path, or to a timestamped file in the backups
// directory when path is empty, and returns the path and SHA-256 hash.
func Save(path string, content []byte, at time.Time) (string, string, error) {
	if path == "" {
		if err := ensureBackupsDir(); err != nil {
			return "", "", err
		}
		path = filepath.Join(config.GetBackupsDir(), FileName(at))
	} else if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", "", err
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, CalculateHash(content), nil
}

// ReadFile reads a snapshot from disk.
func ReadFile(path string) ([]byte, error) {
	//nolint:gosec // G304: path is chosen by the user on the command line
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return content, nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// VerifyFile ensures the file exists and its SHA-256 hash matches the expected hash.
func VerifyFile(path, expectedHash string) (bool, error) {
	if !FileExists(path) {
		return false, nil
	}

	content, err := ReadFile(path)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(CalculateHash(content), expectedHash), nil
}

// List returns the snapshots in the backups directory, newest first.
func List() ([]File, error) {
	dir := config.GetBackupsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	slices.SortFunc(files, func(a, b File) int {
		return strings.Compare(b.Name, a.Name)
	})
	return files, nil
}

func CalculateHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
