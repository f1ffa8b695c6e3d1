package progress

import (
	"fmt"
	"strings"
	"time"
)

// Status is the outcome a user reports for a single day.
type Status string

const (
	StatusClean   Status = "clean"
	StatusSlip    Status = "slip"
	StatusRelapse Status = "relapse"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusClean, StatusSlip, StatusRelapse:
		return true
	default:
		return false
	}
}

func ParseStatus(input string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %q", input)
	}
	return s, nil
}

// Profile holds one user's recovery counters.
type Profile struct {
	ID            string
	Name          string
	Slips         int
	Relapses      int
	StartDate     *time.Time // nil means no active streak
	CurrentStreak int
	BestStreak    int
}

// DayRecord is a manually-edited status for one calendar date.
// At most one record exists per distinct day.
type DayRecord struct {
	Date   time.Time
	Status Status
}

// JournalEntry is a dated note. The list is newest-first by insertion
// order, not by timestamp.
type JournalEntry struct {
	Date    time.Time
	Content string
	Status  Status
	Title   string
}

type Task struct {
	ID         string
	Name       string
	Completed  bool
	Importance int // 1..3
}

// Bundle is the full persisted state of one account.
type Bundle struct {
	User        Profile
	DayRecords  []DayRecord
	Journal     []JournalEntry
	Tasks       []Task
	LastCheckin *time.Time
}

// MonthStats counts day records by status within one calendar month.
type MonthStats struct {
	CleanDays int
	Slips     int
	Relapses  int
}
