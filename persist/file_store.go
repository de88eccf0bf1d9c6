package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Quabena/ferreus-vault/internal/secure"
)

// Extension is the conventional vault file extension.
const Extension = ".sark"

const (
	FilePermissions os.FileMode = 0600
	DirPermissions  os.FileMode = 0700
)

// FileStore implements Store for a single local vault file.
type FileStore struct {
	path string
}

// NewFileStore returns a store targeting path. The parent directory is
// created on first save, not here.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes data to a temporary sibling, forces it to stable storage,
// then atomically renames it over the target. If the process dies at any
// point in between, the target still holds the previous complete envelope.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return writeFileAtomic(s.path, data, FilePermissions)
}

// Load reads the current envelope. A missing vault surfaces the underlying
// os.ErrNotExist so callers can distinguish "no vault yet" when they need
// to.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}
	return data, nil
}

// Exists reports whether a vault file is present at the target path.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Path returns the vault file path.
func (s *FileStore) Path() string {
	return s.path
}

// Delete removes the vault file.
func (s *FileStore) Delete() error {
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("failed to delete vault file: %w", err)
	}
	return nil
}

// Backup copies the current vault file to a fresh timestamped sibling and
// verifies the copy against a checksum of the source before reporting
// success. Returns the backup path.
func (s *FileStore) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read vault file: %w", err)
	}

	backupPath := BackupFilename(s.path)
	if err := writeFileAtomic(backupPath, data, FilePermissions); err != nil {
		return "", err
	}

	written, err := os.ReadFile(backupPath)
	if err != nil {
		_ = os.Remove(backupPath)
		return "", fmt.Errorf("failed to verify backup: %w", err)
	}
	if !secure.Compare(secure.Checksum(data), secure.Checksum(written)) {
		_ = os.Remove(backupPath)
		return "", fmt.Errorf("backup verification failed: checksum mismatch")
	}

	return backupPath, nil
}

// BackupFilename derives a timestamped backup path next to base, appending
// a counter when the name is already taken within the same second.
func BackupFilename(base string) string {
	timestamp := time.Now().Format("20060102_150405")
	dir := filepath.Dir(base)
	name := filepath.Base(base)

	candidate := filepath.Join(dir, fmt.Sprintf("%s_%s_backup%s", name, timestamp, Extension))
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%s_backup_%d%s", name, timestamp, counter, Extension))
	}
}

// writeFileAtomic is the temp-then-rename discipline every write goes
// through. The temp file is removed on every failure path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
