package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yassink/reclaim/internal/progress"
)

func testBundle() progress.Bundle {
	return progress.Bundle{
		User: progress.Profile{Name: "Yassin", CurrentStreak: 10, BestStreak: 15, Slips: 2, Relapses: 1},
		DayRecords: []progress.DayRecord{
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Status: progress.StatusSlip},
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Status: progress.StatusClean},
		},
		Journal: []progress.JournalEntry{
			{Date: time.Date(2024, 3, 2, 20, 15, 0, 0, time.UTC), Content: "rough day", Status: progress.StatusSlip, Title: "🟠 Slips"},
		},
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(testBundle(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 2 day records + 1 journal entry
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Type" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	// Day records sorted ascending by date.
	if rows[1][1] != "2024-03-01" || rows[2][1] != "2024-03-02" {
		t.Fatalf("day records not sorted: %v %v", rows[1], rows[2])
	}
	if rows[1][2] != "clean" || rows[2][2] != "slip" {
		t.Fatalf("unexpected statuses: %v %v", rows[1], rows[2])
	}
	if rows[3][0] != "journal" || rows[3][4] != "rough day" {
		t.Fatalf("unexpected journal row: %v", rows[3])
	}
}

func TestToCSVEmptyBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(progress.Bundle{}, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(testBundle(), filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(testBundle(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.User.Name != "Yassin" || out.User.CurrentStreak != 10 {
		t.Fatalf("unexpected user: %+v", out.User)
	}
	if len(out.DayRecords) != 2 {
		t.Fatalf("expected 2 day records, got %d", len(out.DayRecords))
	}
	if len(out.Journal) != 1 || out.Journal[0].Content != "rough day" {
		t.Fatalf("unexpected journal: %+v", out.Journal)
	}
	if out.ExportedAt == "" {
		t.Fatal("exported_at should be set")
	}
}
