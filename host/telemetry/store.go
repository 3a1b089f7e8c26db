package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBadDeviceID rejects device ids that cannot name an archive file.
var ErrBadDeviceID = errors.New("telemetry: bad device id")

// Store archives heartbeat records under base/YYYY/MM/DD/<device>.jsonl,
// one JSON object per line. Partition days are UTC and come from the
// record timestamp. Each device keeps its file open until the day rolls
// over or the store is closed.
type Store struct {
	base string
	open map[string]*archiveFile
}

type archiveFile struct {
	path string
	f    *os.File
}

// NewStore creates a store rooted at base. Directories are created on
// first append.
func NewStore(base string) *Store {
	return &Store{base: base, open: make(map[string]*archiveFile)}
}

// Append writes one record to the day partition named by its timestamp.
func (s *Store) Append(rec Record) error {
	if rec.DeviceID == "" || strings.ContainsAny(rec.DeviceID, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadDeviceID, rec.DeviceID)
	}

	day := time.Unix(rec.Timestamp, 0).UTC()
	dir := filepath.Join(s.base,
		fmt.Sprintf("%04d", day.Year()),
		fmt.Sprintf("%02d", int(day.Month())),
		fmt.Sprintf("%02d", day.Day()))
	path := filepath.Join(dir, rec.DeviceID+".jsonl")

	af := s.open[rec.DeviceID]
	if af == nil || af.path != path {
		if af != nil {
			_ = af.f.Close()
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("telemetry: create partition: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("telemetry: open archive: %w", err)
		}
		af = &archiveFile{path: path, f: f}
		s.open[rec.DeviceID] = af
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("telemetry: encode record: %w", err)
	}
	line = append(line, '\n')
	if _, err := af.f.Write(line); err != nil {
		return fmt.Errorf("telemetry: append %s: %w", af.path, err)
	}
	return nil
}

// Close closes every open archive file.
func (s *Store) Close() error {
	var first error
	for id, af := range s.open {
		if err := af.f.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.open, id)
	}
	return first
}
