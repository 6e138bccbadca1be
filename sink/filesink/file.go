package filesink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config holds configuration for the file sink.
type Config struct {
	// Filename is the path to the log file.
	Filename string
	// MaxSize is the maximum file size in bytes before rotation
	// (0 = no size rotation).
	MaxSize int64
	// MaxBackups is the maximum number of rotated files to retain
	// (0 = keep all).
	MaxBackups int
	// RotateInterval rotates on a fixed schedule (0 = no interval
	// rotation).
	RotateInterval time.Duration
	// SyncEveryAppend forces an fsync after each append. Slower, but a
	// power loss cannot take the last flush with it.
	SyncEveryAppend bool
	// BufferSize is the size of the write buffer. Zero selects 4 KiB.
	// Buffering is bypassed when SyncEveryAppend is set.
	BufferSize int
}

func applyDefaults(cfg *Config) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// Sink appends flushed log bytes to a file, rotating it by size or
// schedule. It reports the current file size as the persisted size and,
// when size rotation is configured, MaxSize as the persisted capacity.
type Sink struct {
	mu             sync.Mutex
	filename       string
	file           *os.File
	bufWriter      *bufio.Writer
	maxSize        int64
	maxBackups     int
	rotateInterval time.Duration
	syncEvery      bool
	currentSize    int64
	lastRotateTime time.Time
	hasRotation    bool
}

// New creates a file sink, creating the parent directory and the file
// as needed. An existing file is appended to, not truncated.
func New(cfg Config) (*Sink, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filesink: filename is required")
	}
	applyDefaults(&cfg)

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	s := &Sink{
		filename:       cfg.Filename,
		file:           file,
		bufWriter:      bufio.NewWriterSize(file, cfg.BufferSize),
		maxSize:        cfg.MaxSize,
		maxBackups:     cfg.MaxBackups,
		rotateInterval: cfg.RotateInterval,
		syncEvery:      cfg.SyncEveryAppend,
		currentSize:    info.Size(),
		lastRotateTime: time.Now(),
		hasRotation:    cfg.MaxSize > 0 || cfg.RotateInterval > 0,
	}
	return s, nil
}

// Append implements sink.Sink.
func (s *Sink) Append(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rotateIfNeeded(); err != nil {
		return 0, err
	}

	var n int
	var err error
	if s.syncEvery {
		n, err = s.file.Write(p)
		if err == nil {
			err = s.file.Sync()
		}
	} else {
		n, err = s.bufWriter.Write(p)
	}
	s.currentSize += int64(n)
	return n, err
}

// Flush implements sink.Flusher, pushing buffered bytes to the file.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bufWriter.Flush()
}

// PersistedSize implements sink.CapacityReporter.
func (s *Sink) PersistedSize() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSize, true
}

// PersistedCapacity implements sink.CapacityReporter. The capacity is
// unknown unless size rotation bounds the file.
func (s *Sink) PersistedCapacity() (int64, bool) {
	if s.maxSize <= 0 {
		return 0, false
	}
	return s.maxSize, true
}

// Close flushes buffered bytes, syncs and closes the file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.bufWriter.Flush(); err != nil {
		s.file.Close()
		return err
	}
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// rotateIfNeeded checks and performs rotation. Caller holds mu.
func (s *Sink) rotateIfNeeded() error {
	if !s.hasRotation {
		return nil
	}

	needRotate := false
	if s.maxSize > 0 && s.currentSize >= s.maxSize {
		needRotate = true
	}
	if s.rotateInterval > 0 && time.Since(s.lastRotateTime) >= s.rotateInterval {
		needRotate = true
	}
	if !needRotate {
		return nil
	}
	return s.rotate()
}

// rotate renames the current file with a timestamp suffix and opens a
// fresh one. Caller holds mu.
func (s *Sink) rotate() error {
	if err := s.bufWriter.Flush(); err != nil {
		return err
	}
	if err := s.file.Sync(); err != nil {
		return err
	}
	if err := s.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", s.filename, timestamp)

	if err := os.Rename(s.filename, rotatedName); err != nil {
		// Rename failed; reopen the original so logging can continue.
		file, openErr := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		s.file = file
		s.bufWriter.Reset(file)
		return err
	}

	if s.maxBackups > 0 {
		s.cleanupOldBackups()
	}

	file, err := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	s.file = file
	s.bufWriter.Reset(file)
	s.currentSize = 0
	s.lastRotateTime = time.Now()
	return nil
}

// cleanupOldBackups removes rotated files beyond MaxBackups, oldest
// first. Caller holds mu.
func (s *Sink) cleanupOldBackups() {
	dir := filepath.Dir(s.filename)
	base := filepath.Base(s.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > s.maxBackups {
		for _, file := range backups[:len(backups)-s.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}
