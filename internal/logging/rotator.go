package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName     = "keyedit.log"
	backupTimestamp = "20060102-150405.000"
)

// RotateConfig bounds the log file and its backups.
type RotateConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int // 0 keeps every backup
	MaxAgeDays int // 0 disables age pruning
	Compress   bool
}

// LogRotator is an io.WriteCloser over keyedit.log. When a write would push the
// file past MaxSizeMB, the file is renamed to keyedit-<timestamp>.log,
// optionally gzipped, and a fresh file is started.
type LogRotator struct {
	cfg     RotateConfig
	maxSize int64

	mu   sync.Mutex
	file *os.File
	size int64
	now  func() time.Time
}

// NewLogRotator opens keyedit.log in cfg.Dir for appending.
func NewLogRotator(cfg RotateConfig) (*LogRotator, error) {
	if cfg.Dir == "" {
		return nil, errors.New("log directory is empty")
	}
	r := &LogRotator{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * 1024 * 1024,
		now:     time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, logFileName)
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write appends p, rotating first when it would exceed the size limit.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	backup := filepath.Join(r.cfg.Dir, "keyedit-"+r.now().Format(backupTimestamp)+".log")
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: keeping uncompressed log %s: %v\n", backup, err)
		}
	}
	r.prune()
	return r.open()
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(dst)
	zw.Name = filepath.Base(path)

	if _, err = io.Copy(zw, src); err == nil {
		err = zw.Close()
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

// prune drops backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (r *LogRotator) prune() {
	matches, err := filepath.Glob(filepath.Join(r.cfg.Dir, "keyedit-*.log*"))
	if err != nil {
		return
	}
	// Timestamped names sort chronologically.
	sort.Strings(matches)

	cutoff := r.now().Add(-time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour)
	kept := matches[:0]
	for _, path := range matches {
		if !strings.HasSuffix(path, ".log") && !strings.HasSuffix(path, ".log.gz") {
			continue
		}
		if r.cfg.MaxAgeDays > 0 {
			if info, err := os.Stat(path); err == nil && info.ModTime().Before(cutoff) {
				removeBackup(path)
				continue
			}
		}
		kept = append(kept, path)
	}

	if r.cfg.MaxBackups > 0 && len(kept) > r.cfg.MaxBackups {
		for _, path := range kept[:len(kept)-r.cfg.MaxBackups] {
			removeBackup(path)
		}
	}
}

func removeBackup(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to remove old log %s: %v\n", path, err)
	}
}

// Close closes the current file. A later Write reopens it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
