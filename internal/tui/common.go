package tui

import (
	"time"

	"github.com/yassink/reclaim/internal/i18n"
	"github.com/yassink/reclaim/internal/session"
	"github.com/yassink/reclaim/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewHistory
	viewJournal
	viewTasks
)

const viewCount = 4

// appCtx is the state shared by every view: the open store, the live
// session (nil before login) and the active language catalog.
type appCtx struct {
	store *store.Store
	sess  *session.Session
	lang  string
	cat   i18n.Catalog
}

func (c *appCtx) setLanguage(lang string) {
	c.lang = lang
	c.cat = i18n.T(lang)
}

// --- Messages ---

type loggedInMsg struct {
	sess *session.Session
}

type loggedOutMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type checkinDoneMsg struct {
	notification string
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDay(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("2006-01-02")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
