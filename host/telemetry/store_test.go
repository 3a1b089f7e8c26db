package telemetry

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// 2023-11-14 22:13:20 UTC
const archiveStamp int64 = 1700000000

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestStorePartitionsByDay(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	defer st.Close()

	recs := []Record{
		{Timestamp: archiveStamp, DeviceID: "device-00001", Seq: 1, T: 1000204},
		{Timestamp: archiveStamp, DeviceID: "device-00001", Seq: 2, T: 2000204, PeriodMicros: 1000000},
		{Timestamp: archiveStamp + 86400, DeviceID: "device-00001", Seq: 3, T: 3000204, PeriodMicros: 1000000},
	}
	for _, rec := range recs {
		if err := st.Append(rec); err != nil {
			t.Fatalf("Append(seq=%d): %v", rec.Seq, err)
		}
	}

	day1 := readLines(t, filepath.Join(dir, "2023", "11", "14", "device-00001.jsonl"))
	if len(day1) != 2 {
		t.Fatalf("first day: got %d lines, want 2", len(day1))
	}
	day2 := readLines(t, filepath.Join(dir, "2023", "11", "15", "device-00001.jsonl"))
	if len(day2) != 1 {
		t.Fatalf("second day: got %d lines, want 1", len(day2))
	}

	var got Record
	if err := json.Unmarshal([]byte(day2[0]), &got); err != nil {
		t.Fatalf("decode archived line: %v", err)
	}
	if got != recs[2] {
		t.Errorf("archived %+v, want %+v", got, recs[2])
	}
}

func TestStoreSplitsDevices(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	defer st.Close()

	for _, id := range []string{"alpha", "beta"} {
		rec := Record{Timestamp: archiveStamp, DeviceID: id, Seq: 1, T: 1000204}
		if err := st.Append(rec); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}

	for _, id := range []string{"alpha", "beta"} {
		path := filepath.Join(dir, "2023", "11", "14", id+".jsonl")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing archive for %s: %v", id, err)
		}
	}
}

func TestStoreAppendsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	rec := Record{Timestamp: archiveStamp, DeviceID: "alpha", Seq: 1, T: 1000204}

	st := NewStore(dir)
	if err := st.Append(rec); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st = NewStore(dir)
	defer st.Close()
	rec.Seq = 2
	rec.T = 2000204
	if err := st.Append(rec); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, "2023", "11", "14", "alpha.jsonl"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines after reopen, want 2", len(lines))
	}
}

func TestStoreRejectsBadDeviceID(t *testing.T) {
	st := NewStore(t.TempDir())
	defer st.Close()

	for _, id := range []string{"", "../escape", `a\b`, "x/y"} {
		err := st.Append(Record{Timestamp: archiveStamp, DeviceID: id})
		if !errors.Is(err, ErrBadDeviceID) {
			t.Errorf("Append(%q): err=%v, want ErrBadDeviceID", id, err)
		}
	}
}
