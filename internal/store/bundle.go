package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yassink/reclaim/internal/progress"
)

// Store keys. Bundles live under userDataPrefix + username; the
// remaining keys describe the active session.
const (
	userDataPrefix   = "userData_"
	keyCurrentUser   = "currentUser"
	keyAuthenticated = "isAuthenticated"
	keyLanguage      = "language"
)

// Serialized bundle shape. All dates are RFC3339 strings; nullable
// dates are pointers so absent streaks round-trip as JSON null.
type bundleJSON struct {
	User        userJSON    `json:"user"`
	DayRecords  []dayJSON   `json:"dayRecords"`
	Journal     []entryJSON `json:"journalEntries"`
	Tasks       []taskJSON  `json:"tasks"`
	LastCheckin *string     `json:"lastCheckinDate"`
}

type userJSON struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slips         int     `json:"slipCount"`
	Relapses      int     `json:"relapseCount"`
	StartDate     *string `json:"startDate"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
}

type dayJSON struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type entryJSON struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Title   string `json:"title"`
}

type taskJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Completed  bool   `json:"completed"`
	Importance int    `json:"importance"`
}

// CurrentUser is the minimal profile pointer stored for the active
// session.
type CurrentUser struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Name     string `json:"name"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// parseTime is the explicit per-field try-parse: a nil or malformed
// value degrades to nil rather than failing the load.
func parseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// parseDay converts one serialized day record; malformed dates or
// statuses report ok=false so the caller can drop the item.
func parseDay(d dayJSON) (progress.DayRecord, bool) {
	t, err := time.Parse(time.RFC3339, d.Date)
	if err != nil {
		return progress.DayRecord{}, false
	}
	status, err := progress.ParseStatus(d.Status)
	if err != nil {
		return progress.DayRecord{}, false
	}
	return progress.DayRecord{Date: t.UTC(), Status: status}, true
}

func parseEntry(e entryJSON) (progress.JournalEntry, bool) {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return progress.JournalEntry{}, false
	}
	status, err := progress.ParseStatus(e.Status)
	if err != nil {
		return progress.JournalEntry{}, false
	}
	return progress.JournalEntry{Date: t.UTC(), Content: e.Content, Status: status, Title: e.Title}, true
}

func encodeBundle(b progress.Bundle) bundleJSON {
	out := bundleJSON{
		User: userJSON{
			ID:            b.User.ID,
			Name:          b.User.Name,
			Slips:         b.User.Slips,
			Relapses:      b.User.Relapses,
			StartDate:     formatTime(b.User.StartDate),
			CurrentStreak: b.User.CurrentStreak,
			BestStreak:    b.User.BestStreak,
		},
		DayRecords:  []dayJSON{},
		Journal:     []entryJSON{},
		Tasks:       []taskJSON{},
		LastCheckin: formatTime(b.LastCheckin),
	}
	for _, d := range b.DayRecords {
		out.DayRecords = append(out.DayRecords, dayJSON{
			Date:   d.Date.UTC().Format(time.RFC3339),
			Status: string(d.Status),
		})
	}
	for _, e := range b.Journal {
		out.Journal = append(out.Journal, entryJSON{
			Date:    e.Date.UTC().Format(time.RFC3339),
			Content: e.Content,
			Status:  string(e.Status),
			Title:   e.Title,
		})
	}
	for _, t := range b.Tasks {
		out.Tasks = append(out.Tasks, taskJSON{
			ID:         t.ID,
			Name:       t.Name,
			Completed:  t.Completed,
			Importance: t.Importance,
		})
	}
	return out
}

func decodeBundle(raw bundleJSON) progress.Bundle {
	b := progress.Bundle{
		User: progress.Profile{
			ID:            raw.User.ID,
			Name:          raw.User.Name,
			Slips:         raw.User.Slips,
			Relapses:      raw.User.Relapses,
			StartDate:     parseTime(raw.User.StartDate),
			CurrentStreak: raw.User.CurrentStreak,
			BestStreak:    raw.User.BestStreak,
		},
		LastCheckin: parseTime(raw.LastCheckin),
	}
	for _, d := range raw.DayRecords {
		if rec, ok := parseDay(d); ok {
			b.DayRecords = append(b.DayRecords, rec)
		}
	}
	for _, e := range raw.Journal {
		if entry, ok := parseEntry(e); ok {
			b.Journal = append(b.Journal, entry)
		}
	}
	for _, t := range raw.Tasks {
		b.Tasks = append(b.Tasks, progress.Task{
			ID:         t.ID,
			Name:       t.Name,
			Completed:  t.Completed,
			Importance: t.Importance,
		})
	}
	return b
}

// SaveBundle serializes the full account bundle under the user's key
// and refreshes the active-user pointer. Every save overwrites the
// whole bundle.
func (s *Store) SaveBundle(username string, b progress.Bundle) error {
	data, err := json.Marshal(encodeBundle(b))
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	if err := s.Set(userDataPrefix+username, string(data)); err != nil {
		return err
	}

	cur, err := json.Marshal(CurrentUser{Username: username, ID: b.User.ID, Name: b.User.Name})
	if err != nil {
		return fmt.Errorf("marshal current user: %w", err)
	}
	return s.Set(keyCurrentUser, string(cur))
}

// LoadBundle reads a user's bundle. A missing key returns ErrNotFound;
// malformed top-level JSON returns an error wrapping ErrMalformed.
// List items with unparseable dates are dropped.
func (s *Store) LoadBundle(username string) (progress.Bundle, error) {
	data, err := s.Get(userDataPrefix + username)
	if err != nil {
		return progress.Bundle{}, err
	}
	var raw bundleJSON
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return progress.Bundle{}, fmt.Errorf("unmarshal bundle for %q: %w: %v", username, ErrMalformed, err)
	}
	return decodeBundle(raw), nil
}

// DeleteBundle removes a user's saved data entirely.
func (s *Store) DeleteBundle(username string) error {
	return s.Delete(userDataPrefix + username)
}

// ActiveUser returns the stored active-session pointer.
func (s *Store) ActiveUser() (CurrentUser, error) {
	data, err := s.Get(keyCurrentUser)
	if err != nil {
		return CurrentUser{}, err
	}
	var cur CurrentUser
	if err := json.Unmarshal([]byte(data), &cur); err != nil {
		return CurrentUser{}, fmt.Errorf("unmarshal current user: %w", err)
	}
	return cur, nil
}

// ClearActiveSession removes the active-user pointer and the
// authenticated flag without touching any per-user bundle.
func (s *Store) ClearActiveSession() error {
	if err := s.Delete(keyCurrentUser); err != nil {
		return err
	}
	return s.Delete(keyAuthenticated)
}

func (s *Store) SetAuthenticated(v bool) error {
	if !v {
		return s.Delete(keyAuthenticated)
	}
	return s.Set(keyAuthenticated, "true")
}

func (s *Store) Authenticated() bool {
	v, err := s.Get(keyAuthenticated)
	return err == nil && v == "true"
}

// Language returns the stored interface language, or "" when none is
// saved yet.
func (s *Store) Language() string {
	v, err := s.Get(keyLanguage)
	if err != nil {
		return ""
	}
	return v
}

func (s *Store) SetLanguage(lang string) error {
	return s.Set(keyLanguage, lang)
}
